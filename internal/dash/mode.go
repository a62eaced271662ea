// Package dash implements an animated circular download indicator as a
// Bubble Tea component.
//
// While a download is running the indicator shows a spinning arc around an
// outer ring and an inner circle that fills with the reported progress. When
// the host reports an outcome, the widget plays three chained animations:
// the center content collapses to a dot (and, on failure/unknown, the inner
// circle catches up to full size in the outcome color), the dot grows into a
// horizontal line, and the line folds into a tick, a cross, or an exclamation
// mark. After a short settle delay the widget emits a single DoneMsg.
package dash

// Mode is the visual state the indicator is in. During a transition the
// pending terminal mode is carried alongside as the "next" mode.
type Mode int

const (
	ModeNone Mode = iota
	ModeDownload
	ModeTransitionTextAndCircle
	ModeTransitionLine
	ModeSuccess
	ModeFailure
	ModeUnknown
)

// Terminal reports whether m is an end state of a cycle.
func (m Mode) Terminal() bool {
	return m == ModeSuccess || m == ModeFailure || m == ModeUnknown
}

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeDownload:
		return "download"
	case ModeTransitionTextAndCircle:
		return "transition-text-and-circle"
	case ModeTransitionLine:
		return "transition-line"
	case ModeSuccess:
		return "success"
	case ModeFailure:
		return "failure"
	case ModeUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}
