package dash

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetProgressStartsTicking(t *testing.T) {
	m := New()
	assert.Equal(t, ModeNone, m.Mode())

	m, cmd := m.SetProgress(0.25)
	assert.Equal(t, ModeDownload, m.Mode())
	assert.Equal(t, 0.25, m.Progress())
	assert.NotNil(t, cmd, "first progress report must start the frame loop")

	// Further reports reuse the running tick chain.
	m, cmd = m.SetProgress(0.5)
	assert.Equal(t, 0.5, m.Progress())
	assert.Nil(t, cmd)
}

func TestSetProgressIgnoredAfterShow(t *testing.T) {
	m := New()
	m, _ = m.SetProgress(0.4)
	m, _ = m.ShowFailure()

	m, cmd := m.SetProgress(0.9)
	assert.Nil(t, cmd)
	assert.Equal(t, 0.4, m.Progress())
	assert.Equal(t, ModeTransitionTextAndCircle, m.Mode())
	assert.Equal(t, ModeFailure, m.NextMode())
}

func TestFrameMsgGuards(t *testing.T) {
	m := New()
	m, _ = m.SetProgress(0.5)
	before := m.ArcStart()

	// Frames for another widget instance or an abandoned tick chain are
	// dropped without advancing anything.
	m, cmd := m.Update(frameMsg{id: m.id + 1, tag: m.tag, at: time.Now()})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.ArcStart())

	m, cmd = m.Update(frameMsg{id: m.id, tag: m.tag - 1, at: time.Now()})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.ArcStart())

	m, cmd = m.Update(frameMsg{id: m.id, tag: m.tag, at: time.Now()})
	assert.NotNil(t, cmd, "a live frame keeps the loop running")
	assert.Greater(t, m.ArcStart(), before)
}

func TestArcSlowsWithProgressAndWraps(t *testing.T) {
	m := New(WithSweepSpeed(20))
	m, _ = m.SetProgress(0)
	start := m.ArcStart()
	m, _ = m.Update(frameMsg{id: m.id, tag: m.tag, at: time.Now()})
	assert.InDelta(t, start+20, m.ArcStart(), 1e-9)

	m, _ = m.SetProgress(1)
	at100 := m.ArcStart()
	m, _ = m.Update(frameMsg{id: m.id, tag: m.tag, at: time.Now()})
	assert.Equal(t, at100, m.ArcStart(), "arc freezes at 100%")
}

func TestTransitionRunsToCompletionOnce(t *testing.T) {
	m := New(WithTransitionDuration(400 * time.Millisecond))
	m, _ = m.SetProgress(1)
	m, _ = m.ShowSuccess()

	// Drive synthetic frames far enough apart to finish each stage.
	now := time.Now()
	var finished int
	for i := 1; i <= 6; i++ {
		at := now.Add(time.Duration(i) * 500 * time.Millisecond)
		var cmd tea.Cmd
		m, cmd = m.Update(frameMsg{id: m.id, tag: m.tag, at: at})
		if !m.machine.animating() && m.Mode() == ModeSuccess {
			if cmd != nil {
				finished++
			}
			break
		}
	}
	require.Equal(t, ModeSuccess, m.Mode())
	require.Equal(t, 1, finished, "the settle timer is scheduled exactly once")

	// A frame after completion is a stale tag and changes nothing.
	stale, cmd := m.Update(frameMsg{id: m.id, tag: m.tag - 1, at: now.Add(time.Hour)})
	assert.Nil(t, cmd)
	assert.Equal(t, ModeSuccess, stale.Mode())
}

func TestDoneTimerRouting(t *testing.T) {
	m := New()
	m, _ = m.ShowUnknown()

	msg := doneTimerMsg{id: m.id, cycle: m.machine.cycle, outcome: ModeUnknown}
	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	done, ok := cmd().(DoneMsg)
	require.True(t, ok)
	assert.Equal(t, ModeUnknown, done.Outcome)

	// A reset in the meantime makes the timer stale.
	m = m.Reset()
	_, cmd = m.Update(msg)
	assert.Nil(t, cmd)
}

func TestResetReturnsToIdle(t *testing.T) {
	m := New()
	m, _ = m.SetProgress(0.7)
	m, _ = m.ShowFailure()

	m = m.Reset()
	assert.Equal(t, ModeNone, m.Mode())
	assert.Equal(t, 0.0, m.Progress())
	assert.Equal(t, m.cfg.ArcStart, m.ArcStart())

	// The widget accepts progress again after a reset.
	m, cmd := m.SetProgress(0.1)
	assert.Equal(t, ModeDownload, m.Mode())
	assert.NotNil(t, cmd)
}

func TestSetSizeRecomputesGeometry(t *testing.T) {
	m := New(WithDiameter(15))
	assert.Equal(t, 15.0, m.geom.size)

	m = m.SetSize(20, 10)
	assert.Equal(t, 10.0, m.geom.size)

	m = m.SetSize(0, 0)
	assert.True(t, m.geom.empty())
	assert.Equal(t, "", m.View(), "degenerate bounds draw nothing")
}

func TestUnrelatedMessagesIgnored(t *testing.T) {
	m := New()
	m2, cmd := m.Update("not my message")
	assert.Nil(t, cmd)
	assert.Equal(t, m.Mode(), m2.Mode())
}
