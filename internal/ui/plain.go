package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"dashring/internal/model"
	"dashring/internal/progress"
	"dashring/internal/scenario"
	"dashring/internal/util/format"
)

// plainInterval throttles non-TTY progress lines so piped output stays
// readable.
const plainInterval = 500 * time.Millisecond

// RunPlain drives a source without the TUI, printing timestamped progress
// lines to out. A failure or unknown outcome is returned as an error so the
// exit code reflects it.
func RunPlain(ctx context.Context, out io.Writer, opts model.CLIOptions, src Source) error {
	if src == nil {
		outcome := opts.Outcome
		if outcome == "" {
			outcome = "success"
		}
		plan, err := scenario.ForOutcome(outcome)
		if err != nil {
			return err
		}
		src = plan.Run
	}

	rep := &plainReporter{
		out:   out,
		start: time.Now(),
		done:  make(chan progress.Result, 1),
	}
	go src(ctx, rep)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-rep.done:
		switch res.Outcome {
		case progress.OutcomeSuccess:
			fmt.Fprintf(out, "[%s] Download Successful!\n", rep.elapsed())
			return nil
		case progress.OutcomeFailure:
			fmt.Fprintf(out, "[%s] Download Failed!\n", rep.elapsed())
		case progress.OutcomeUnknown:
			fmt.Fprintf(out, "[%s] Unknown Download Error!\n", rep.elapsed())
		}
		if res.Err != nil {
			return res.Err
		}
		return fmt.Errorf("download did not succeed")
	}
}

// plainReporter prints one line per throttle window, podcaster-bar style:
// elapsed time, message, percent.
type plainReporter struct {
	out   io.Writer
	start time.Time
	last  time.Time
	done  chan progress.Result
}

func (r *plainReporter) Update(u progress.Update) {
	now := time.Now()
	if now.Sub(r.last) < plainInterval {
		return
	}
	r.last = now
	msg := u.Message
	if msg == "" {
		msg = "downloading"
	}
	line := fmt.Sprintf("[%s] %s %s", r.elapsed(), msg, format.Percent(u.Percent))
	if u.Speed != "" {
		line += " at " + u.Speed
	}
	fmt.Fprintln(r.out, line)
}

func (r *plainReporter) Result(res progress.Result) {
	r.done <- res
}

func (r *plainReporter) elapsed() string {
	return time.Since(r.start).Truncate(100 * time.Millisecond).String()
}
