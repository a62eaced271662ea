package dash

import "time"

// Defaults for the configuration surface. Colors follow the palette the
// widget shipped with originally.
const (
	DefaultRingColor    = "#0099cc"
	DefaultArcColor     = "#ffffff"
	DefaultSuccessColor = "#99cc00"
	DefaultFailureColor = "#ff4444"
	DefaultUnknownColor = "#ffbb33"
	DefaultTextFrom     = "#000000"
	DefaultTextTo       = "#ffffff"
	DefaultBackground   = "#000000"

	// DefaultArcStart is the initial sweep position in degrees (12 o'clock;
	// angles grow clockwise with 0 at 3 o'clock).
	DefaultArcStart = 270.0
	// DefaultSweepSpeed is the per-frame arc advance in degrees at zero
	// progress. The advance scales with (1-progress) so the arc slows to a
	// stop as the download completes.
	DefaultSweepSpeed = 20.0
	// DefaultArcLength is the fixed sweep length in degrees.
	DefaultArcLength = 90.0

	// Stroke widths in logical units (one unit = one terminal row).
	DefaultArcWidth   = 1.5
	DefaultRingWidth  = 1.0
	DefaultLineStroke = 1.0

	// DefaultMaxTextSize bounds the binary search for the percent label.
	DefaultMaxTextSize = 5.0
	// DefaultDiameter is the indicator height in rows.
	DefaultDiameter = 15

	// DefaultTransitionDuration is the length of each of the three chained
	// stage animations, and also of the settle delay before DoneMsg.
	DefaultTransitionDuration = 400 * time.Millisecond
	// DefaultFrameInterval approximates display-refresh granularity.
	DefaultFrameInterval = time.Second / 60
)

const (
	maxAlpha = 255

	circleDegrees = 360.0

	// Share of the inner area used by the terminal-state symbols.
	symbolWidthPercent = 0.5

	// Tick geometry: the short arm meets the long arm at the view center.
	tickShortArmRatio = 0.25
	tickLongArmRatio  = 0.75
	armAngleDegrees   = 45.0

	// Exclamation geometry.
	unknownRotationDegrees = 90.0
	unknownDotDistance     = 2.0

	// Stage one starts at this ramp value and runs down to zero; once the
	// ramp drops below collapseThreshold x the start value, the shrinking
	// label is replaced by the collapse dot.
	transitionStartValue = 1.0
	transitionEndValue   = 0.0
	collapseThreshold    = 0.1

	// Horizontal padding (in units) subtracted from the width available to
	// the percent label.
	textPadding = 1.0

	// Label width per fitted size unit; a terminal cell is half a logical
	// unit wide at the canvas' 2:1 aspect.
	glyphAspect = 0.5

	textFitPrecision = 0.5
)

// Config is the immutable style configuration, fixed at construction.
type Config struct {
	RingColor    RGB
	ArcColor     RGB
	SuccessColor RGB
	FailureColor RGB
	UnknownColor RGB
	TextFrom     RGB
	TextTo       RGB
	Background   RGB

	ArcStart   float64
	SweepSpeed float64
	ArcLength  float64
	ArcWidth   float64
	RingWidth  float64
	LineStroke float64

	MaxTextSize float64
	ShowPercent bool
	Diameter    int

	TransitionDuration time.Duration
	FrameInterval      time.Duration
}

func defaultConfig() Config {
	mustColor := func(s string) RGB {
		c, _ := ParseColor(s)
		return c
	}
	return Config{
		RingColor:          mustColor(DefaultRingColor),
		ArcColor:           mustColor(DefaultArcColor),
		SuccessColor:       mustColor(DefaultSuccessColor),
		FailureColor:       mustColor(DefaultFailureColor),
		UnknownColor:       mustColor(DefaultUnknownColor),
		TextFrom:           mustColor(DefaultTextFrom),
		TextTo:             mustColor(DefaultTextTo),
		Background:         mustColor(DefaultBackground),
		ArcStart:           DefaultArcStart,
		SweepSpeed:         DefaultSweepSpeed,
		ArcLength:          DefaultArcLength,
		ArcWidth:           DefaultArcWidth,
		RingWidth:          DefaultRingWidth,
		LineStroke:         DefaultLineStroke,
		MaxTextSize:        DefaultMaxTextSize,
		Diameter:           DefaultDiameter,
		TransitionDuration: DefaultTransitionDuration,
		FrameInterval:      DefaultFrameInterval,
	}
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithRingColor sets the outer ring color from a hex string. Invalid colors
// leave the default in place.
func WithRingColor(hex string) Option {
	return func(m *Model) { setColor(&m.cfg.RingColor, hex) }
}

// WithArcColor sets the indeterminate arc color.
func WithArcColor(hex string) Option {
	return func(m *Model) { setColor(&m.cfg.ArcColor, hex) }
}

// WithSuccessColor sets the inner circle color for download and success.
func WithSuccessColor(hex string) Option {
	return func(m *Model) { setColor(&m.cfg.SuccessColor, hex) }
}

// WithFailureColor sets the inner circle color for failure.
func WithFailureColor(hex string) Option {
	return func(m *Model) { setColor(&m.cfg.FailureColor, hex) }
}

// WithUnknownColor sets the inner circle color for the unknown outcome.
func WithUnknownColor(hex string) Option {
	return func(m *Model) { setColor(&m.cfg.UnknownColor, hex) }
}

// WithTextColors sets the colors the percent label blends between as the
// progress moves from 0 to 1.
func WithTextColors(fromHex, toHex string) Option {
	return func(m *Model) {
		setColor(&m.cfg.TextFrom, fromHex)
		setColor(&m.cfg.TextTo, toHex)
	}
}

// WithBackground sets the color translucent fills are flattened against.
func WithBackground(hex string) Option {
	return func(m *Model) { setColor(&m.cfg.Background, hex) }
}

// WithArcStart sets the initial arc position in degrees.
func WithArcStart(deg float64) Option {
	return func(m *Model) { m.cfg.ArcStart = deg }
}

// WithSweepSpeed sets the arc advance per frame, in degrees at zero progress.
func WithSweepSpeed(deg float64) Option {
	return func(m *Model) { m.cfg.SweepSpeed = deg }
}

// WithArcLength sets the fixed sweep length in degrees.
func WithArcLength(deg float64) Option {
	return func(m *Model) { m.cfg.ArcLength = deg }
}

// WithArcWidth sets the arc stroke width in logical units.
func WithArcWidth(w float64) Option {
	return func(m *Model) { m.cfg.ArcWidth = w }
}

// WithRingWidth sets the outer ring stroke width in logical units.
func WithRingWidth(w float64) Option {
	return func(m *Model) { m.cfg.RingWidth = w }
}

// WithMaxTextSize bounds the percent label fit.
func WithMaxTextSize(s float64) Option {
	return func(m *Model) { m.cfg.MaxTextSize = s }
}

// WithShowPercent enables the percent label in the center.
func WithShowPercent(show bool) Option {
	return func(m *Model) { m.cfg.ShowPercent = show }
}

// WithDiameter sets the indicator height in rows.
func WithDiameter(rows int) Option {
	return func(m *Model) {
		if rows > 0 {
			m.cfg.Diameter = rows
		}
	}
}

// WithTransitionDuration overrides the stage animation duration. Mostly
// useful in tests; zero or negative durations are ignored.
func WithTransitionDuration(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.cfg.TransitionDuration = d
		}
	}
}

func setColor(dst *RGB, hex string) {
	if c, ok := ParseColor(hex); ok {
		*dst = c
	}
}
