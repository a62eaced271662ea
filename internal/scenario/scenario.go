// Package scenario maps a requested demo outcome onto the scripted download
// plan that drives it: how far the simulated progress runs, how fast, and
// which outcome fires at the end.
package scenario

import (
	"fmt"
	"time"

	"dashring/internal/downloader"
	"dashring/internal/progress"
)

// The classic demo scripts: success downloads all the way, failure dies at
// the halfway point, unknown errors out before any progress is made.
const (
	successTarget = 1.0
	failureTarget = 0.5

	step         = 0.01
	tickInterval = 30 * time.Millisecond
)

// Outcomes lists the accepted outcome names, for flag help and validation.
func Outcomes() []string {
	return []string{"success", "failure", "unknown"}
}

// ForOutcome resolves an outcome name to its simulated download plan.
func ForOutcome(name string) (downloader.Simulated, error) {
	switch name {
	case "success":
		return downloader.Simulated{
			Outcome:  progress.OutcomeSuccess,
			Target:   successTarget,
			Step:     step,
			Interval: tickInterval,
		}, nil
	case "failure":
		return downloader.Simulated{
			Outcome:  progress.OutcomeFailure,
			Target:   failureTarget,
			Step:     step,
			Interval: tickInterval,
		}, nil
	case "unknown":
		return downloader.Simulated{
			Outcome: progress.OutcomeUnknown,
			Target:  -1,
		}, nil
	default:
		return downloader.Simulated{}, fmt.Errorf("invalid outcome: %q (valid: success|failure|unknown)", name)
	}
}
