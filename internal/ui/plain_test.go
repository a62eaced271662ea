package ui

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashring/internal/model"
	"dashring/internal/progress"
)

func instantSource(outcome progress.Outcome, err error) Source {
	return func(_ context.Context, rep progress.Reporter) {
		rep.Update(progress.Update{Percent: 0.5, Message: "halfway"})
		rep.Result(progress.Result{Outcome: outcome, Err: err})
	}
}

func TestRunPlainSuccess(t *testing.T) {
	var out bytes.Buffer
	err := RunPlain(context.Background(), &out, model.CLIOptions{},
		instantSource(progress.OutcomeSuccess, nil))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Download Successful!")
}

func TestRunPlainFailureReturnsError(t *testing.T) {
	var out bytes.Buffer
	err := RunPlain(context.Background(), &out, model.CLIOptions{},
		instantSource(progress.OutcomeFailure, assert.AnError))
	require.Error(t, err)
	assert.Contains(t, out.String(), "Download Failed!")
}

func TestRunPlainUnknownReturnsError(t *testing.T) {
	var out bytes.Buffer
	err := RunPlain(context.Background(), &out, model.CLIOptions{},
		instantSource(progress.OutcomeUnknown, nil))
	require.Error(t, err)
	assert.Contains(t, out.String(), "Unknown Download Error!")
}

func TestRunPlainResolvesOutcomeScenario(t *testing.T) {
	var out bytes.Buffer
	opts := model.CLIOptions{Outcome: "unknown"}
	err := RunPlain(context.Background(), &out, opts, nil)
	require.Error(t, err)
	assert.Contains(t, out.String(), "Unknown Download Error!")
}

func TestRunPlainInvalidOutcome(t *testing.T) {
	var out bytes.Buffer
	err := RunPlain(context.Background(), &out, model.CLIOptions{Outcome: "bogus"}, nil)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunPlainCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	blocked := func(ctx context.Context, _ progress.Reporter) {
		<-ctx.Done()
	}
	err := RunPlain(ctx, &out, model.CLIOptions{}, blocked)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlainReporterThrottles(t *testing.T) {
	var out bytes.Buffer
	rep := &plainReporter{out: &out, start: time.Now(), done: make(chan progress.Result, 1)}

	for i := 0; i < 10; i++ {
		rep.Update(progress.Update{Percent: float64(i) / 10})
	}
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("\n")),
		"rapid updates collapse into one line per throttle window")
}
