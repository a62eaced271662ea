package downloader

import (
	"context"
	"fmt"
	"time"

	"dashring/internal/progress"
)

// Simulated is a scripted download source: it advances by Step every
// Interval until the progress passes Target, then reports the configured
// Outcome. A negative Target reports the outcome immediately with no
// progress at all. Cancelling the context aborts silently.
type Simulated struct {
	Outcome  progress.Outcome
	Target   float64
	Step     float64
	Interval time.Duration
}

// Run plays the script to completion, reporting through rep.
func (s Simulated) Run(ctx context.Context, rep progress.Reporter) {
	if s.Target < 0 {
		rep.Result(progress.Result{Outcome: s.Outcome, Err: outcomeErr(s.Outcome)})
		return
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	p := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p += s.Step
			if p > s.Target {
				rep.Result(progress.Result{Outcome: s.Outcome, Err: outcomeErr(s.Outcome)})
				return
			}
			rep.Update(progress.Update{
				Percent: p,
				Message: fmt.Sprintf("simulated download %d%%", int(p*100)),
			})
		}
	}
}

func outcomeErr(o progress.Outcome) error {
	switch o {
	case progress.OutcomeFailure:
		return fmt.Errorf("simulated download failure")
	case progress.OutcomeUnknown:
		return fmt.Errorf("simulated unknown error")
	default:
		return nil
	}
}
