package dash

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel color. Alpha is not stored; translucency is
// realized by blending toward the configured background.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a "#rrggbb" string usable as a lipgloss color.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses a hex color string such as "#99CC00". The ok result is
// false when the string is not a valid color.
func ParseColor(s string) (RGB, bool) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, true
}

// Blend mixes two colors with per-channel linear interpolation weighted by p:
// channel = to*p + from*(1-p), truncated to an integer. p is clamped to [0,1].
// Blend(from, to, 0) returns exactly from and Blend(from, to, 1) exactly to.
func Blend(from, to RGB, p float64) RGB {
	p = clamp01(p)
	inv := 1 - p
	return RGB{
		R: uint8(float64(to.R)*p + float64(from.R)*inv),
		G: uint8(float64(to.G)*p + float64(from.G)*inv),
		B: uint8(float64(to.B)*p + float64(from.B)*inv),
	}
}

// WithAlpha flattens c against the background as if drawn with the given
// alpha in [0,255].
func (c RGB) WithAlpha(alpha int, background RGB) RGB {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > maxAlpha {
		alpha = maxAlpha
	}
	return Blend(background, c, float64(alpha)/maxAlpha)
}

func clamp01(v float64) float64 {
	if v != v || v < 0 { // NaN clamps to zero
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
