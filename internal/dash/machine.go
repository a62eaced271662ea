package dash

import (
	"math"
	"time"
)

// stage identifies which of the three chained transition animations is
// running. The stages are strictly sequential; starting a new transition
// abandons whatever was in flight and restarts from stageTextAndCircle.
type stage int

const (
	stageIdle stage = iota
	stageTextAndCircle
	stageLine
	stageState
)

// machine tracks the indicator's visual state: the current and pending mode,
// the externally supplied download progress, and the scalar ramp driving the
// active transition stage. It is only ever touched from the Bubble Tea update
// loop, so it carries no lock.
type machine struct {
	current Mode
	next    Mode

	progress   float64 // download progress, clamped to [0,1]
	transition float64 // transition progress, the renderer's blend driver

	stage     stage
	rampFrom  float64
	rampTo    float64
	rampStart time.Time
	duration  time.Duration

	// cycle increments on every transition start and on reset. Deferred
	// completion notifications carry the cycle they belong to and are
	// dropped when it no longer matches.
	cycle int
}

func newMachine(duration time.Duration) machine {
	return machine{duration: duration}
}

// setProgress records externally reported progress. Accepted only while idle
// or already downloading; silently ignored in transition and terminal modes.
// NaN and out-of-range values clamp, never error.
func (m *machine) setProgress(v float64) bool {
	if m.current != ModeNone && m.current != ModeDownload {
		return false
	}
	m.current = ModeDownload
	m.progress = clamp01(v)
	return true
}

// show begins the three-stage transition toward the given terminal mode.
// Calling it again while a transition is running restarts stage one with the
// new target; the override is deliberate.
func (m *machine) show(target Mode, now time.Time) {
	if !target.Terminal() {
		return
	}
	m.current = ModeTransitionTextAndCircle
	m.next = target
	m.cycle++
	m.startRamp(stageTextAndCircle, transitionStartValue, transitionEndValue, now)
}

// advance samples the active ramp at the given instant and chains the next
// stage when the current one completes. It returns a terminal mode (and
// true) exactly once per cycle, when the final stage finishes; the caller
// then schedules the settle delay before notifying.
func (m *machine) advance(now time.Time) (Mode, bool) {
	if m.stage == stageIdle {
		return ModeNone, false
	}

	t := 1.0
	if m.duration > 0 {
		t = clamp01(now.Sub(m.rampStart).Seconds() / m.duration.Seconds())
	}
	m.transition = m.rampFrom + (m.rampTo-m.rampFrom)*decelerate(t)
	if t < 1 {
		return ModeNone, false
	}

	switch m.stage {
	case stageTextAndCircle:
		m.current = ModeTransitionLine
		m.startRamp(stageLine, transitionEndValue, transitionStartValue, now)
	case stageLine:
		m.current = m.next
		m.next = ModeNone
		m.startRamp(stageState, transitionEndValue, transitionStartValue, now)
	case stageState:
		m.stage = stageIdle
		return m.current, true
	}
	return ModeNone, false
}

// reset returns the machine to its initial idle state and invalidates any
// pending completion notification.
func (m *machine) reset() {
	m.current = ModeNone
	m.next = ModeNone
	m.progress = 0
	m.transition = 0
	m.stage = stageIdle
	m.cycle++
}

// animating reports whether a stage ramp is in flight and needs frames.
func (m *machine) animating() bool {
	return m.stage != stageIdle
}

func (m *machine) startRamp(s stage, from, to float64, now time.Time) {
	m.stage = s
	m.rampFrom = from
	m.rampTo = to
	m.rampStart = now
	m.transition = from
}

// decelerate is the easing curve applied to every stage ramp: fast at the
// start, settling toward the end.
func decelerate(t float64) float64 {
	return 1 - math.Pow(1-t, 2)
}
