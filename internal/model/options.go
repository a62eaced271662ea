// Package model holds the option structs shared between the CLI layer and
// the demo UI.
package model

// CLIOptions holds user-configurable runtime options as parsed from flags
// and config.
type CLIOptions struct {
	// Widget style.
	ShowPercent  bool
	Diameter     int     // indicator height in rows
	RingColor    string  // hex colors; empty keeps the widget default
	ArcColor     string
	SuccessColor string
	FailureColor string
	UnknownColor string
	TextFrom     string
	TextTo       string
	SweepSpeed   float64 // degrees per frame at zero progress; 0 = default
	ArcLength    float64 // sweep length in degrees; 0 = default

	// Demo behavior.
	Outcome string // success | failure | unknown (demo command)
	URL     string // download command source
	OutFile string // download command destination

	Debug bool // write a debug log to the state dir
	NoUI  bool // plain line output instead of the TUI
}
