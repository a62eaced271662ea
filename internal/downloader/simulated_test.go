package downloader

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashring/internal/progress"
)

func TestSimulatedRunsToTarget(t *testing.T) {
	s := Simulated{
		Outcome:  progress.OutcomeSuccess,
		Target:   0.1,
		Step:     0.02,
		Interval: time.Millisecond,
	}
	rep := &recordingReporter{}
	s.Run(context.Background(), rep)

	updates, results := rep.snapshot()
	require.Len(t, results, 1)
	assert.Equal(t, progress.OutcomeSuccess, results[0].Outcome)
	assert.NoError(t, results[0].Err)

	require.NotEmpty(t, updates)
	for i := 1; i < len(updates); i++ {
		assert.Greater(t, updates[i].Percent, updates[i-1].Percent)
	}
	assert.LessOrEqual(t, updates[len(updates)-1].Percent, s.Target)
}

func TestSimulatedFailureCarriesError(t *testing.T) {
	s := Simulated{
		Outcome:  progress.OutcomeFailure,
		Target:   0.05,
		Step:     0.05,
		Interval: time.Millisecond,
	}
	rep := &recordingReporter{}
	s.Run(context.Background(), rep)

	_, results := rep.snapshot()
	require.Len(t, results, 1)
	assert.Equal(t, progress.OutcomeFailure, results[0].Outcome)
	assert.Error(t, results[0].Err)
}

func TestSimulatedNegativeTargetReportsImmediately(t *testing.T) {
	s := Simulated{Outcome: progress.OutcomeUnknown, Target: -1}
	rep := &recordingReporter{}
	s.Run(context.Background(), rep)

	updates, results := rep.snapshot()
	assert.Empty(t, updates)
	require.Len(t, results, 1)
	assert.Equal(t, progress.OutcomeUnknown, results[0].Outcome)
	assert.Error(t, results[0].Err)
}

func TestSimulatedCancellationAbortsSilently(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := Simulated{
		Outcome:  progress.OutcomeSuccess,
		Target:   1,
		Step:     0.01,
		Interval: time.Millisecond,
	}
	rep := &recordingReporter{}
	s.Run(ctx, rep)

	_, results := rep.snapshot()
	assert.Empty(t, results, "a cancelled run reports nothing")
}
