package dash

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DoneMsg is delivered on the program's message stream exactly once per
// completed success/failure/unknown cycle, one settle delay after the final
// animation ends.
type DoneMsg struct {
	Outcome Mode
}

// frameMsg drives one animation frame. id pins the message to a widget
// instance and tag to its current tick chain, so a restart or reset never
// doubles the frame rate.
type frameMsg struct {
	id  int
	tag int
	at  time.Time
}

// doneTimerMsg fires after the settle delay. It carries the cycle it was
// scheduled for; a reset in the meantime makes it stale.
type doneTimerMsg struct {
	id      int
	cycle   int
	outcome Mode
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Model is the dash indicator component. Use it like any bubble: embed it in
// a parent model, forward messages to Update, and splice its View into the
// parent's. All mutation happens on the Bubble Tea update loop.
type Model struct {
	cfg  Config
	geom geometry

	machine  machine
	arcStart float64

	id      int
	tag     int
	ticking bool
}

// New constructs an indicator with the given options applied over defaults.
func New(opts ...Option) Model {
	m := Model{cfg: defaultConfig(), id: nextID()}
	for _, opt := range opts {
		opt(&m)
	}
	m.machine = newMachine(m.cfg.TransitionDuration)
	m.arcStart = m.cfg.ArcStart
	m.geom = newGeometry(int(float64(m.cfg.Diameter)*cellAspect), m.cfg.Diameter, m.cfg)
	return m
}

// Init implements tea.Model. The widget is idle until progress is reported.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize recomputes the geometry cache for new bounds, in terminal cells.
func (m Model) SetSize(cols, rows int) Model {
	m.geom = newGeometry(cols, rows, m.cfg)
	return m
}

// SetProgress reports externally supplied download progress in [0,1]. Values
// outside the range (including NaN) are clamped. Accepted only while idle or
// downloading; a no-op during transitions and terminal modes.
func (m Model) SetProgress(v float64) (Model, tea.Cmd) {
	if !m.machine.setProgress(v) {
		return m, nil
	}
	return m.ensureTicking()
}

// ShowSuccess begins the three-stage transition toward the success tick.
func (m Model) ShowSuccess() (Model, tea.Cmd) {
	return m.show(ModeSuccess, time.Now())
}

// ShowFailure begins the three-stage transition toward the failure cross.
func (m Model) ShowFailure() (Model, tea.Cmd) {
	return m.show(ModeFailure, time.Now())
}

// ShowUnknown begins the three-stage transition toward the exclamation mark.
func (m Model) ShowUnknown() (Model, tea.Cmd) {
	return m.show(ModeUnknown, time.Now())
}

// Reset returns the widget to its initial idle state, cancelling in-flight
// animations and any pending completion notification.
func (m Model) Reset() Model {
	m.machine.reset()
	m.arcStart = m.cfg.ArcStart
	m.tag++
	m.ticking = false
	return m
}

// Update implements tea.Model. Messages other than the widget's own are
// ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.id != m.id || msg.tag != m.tag {
			return m, nil
		}
		return m.step(msg.at)

	case doneTimerMsg:
		if msg.id != m.id || msg.cycle != m.machine.cycle {
			return m, nil
		}
		outcome := msg.outcome
		return m, func() tea.Msg { return DoneMsg{Outcome: outcome} }
	}
	return m, nil
}

// View implements tea.Model. A pure function of the frame snapshot.
func (m Model) View() string {
	return m.snapshot().render()
}

// Mode returns the current visual mode.
func (m Model) Mode() Mode { return m.machine.current }

// NextMode returns the pending terminal mode during a transition.
func (m Model) NextMode() Mode { return m.machine.next }

// Progress returns the clamped download progress.
func (m Model) Progress() float64 { return m.machine.progress }

// TransitionProgress returns the in-flight stage animation's driver value.
func (m Model) TransitionProgress() float64 { return m.machine.transition }

// ArcStart returns the indeterminate arc's current position in degrees.
func (m Model) ArcStart() float64 { return m.arcStart }

func (m Model) show(target Mode, now time.Time) (Model, tea.Cmd) {
	m.machine.show(target, now)
	return m.ensureTicking()
}

// step advances one animation frame: the arc position while downloading, and
// the stage machine during transitions.
func (m Model) step(now time.Time) (Model, tea.Cmd) {
	if m.machine.current == ModeDownload {
		// The arc slows in step with the download and stops at 100%.
		m.arcStart += (1 - m.machine.progress) * m.cfg.SweepSpeed
		if m.arcStart > circleDegrees || m.arcStart < 0 {
			m.arcStart = 0
		}
	}

	if outcome, finished := m.machine.advance(now); finished {
		m.ticking = false
		return m, m.settleCmd(outcome)
	}

	if m.machine.current == ModeDownload || m.machine.animating() {
		return m, m.frameCmd()
	}
	m.ticking = false
	return m, nil
}

func (m Model) ensureTicking() (Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	m.tag++
	return m, m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(m.cfg.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg{id: id, tag: tag, at: t}
	})
}

// settleCmd schedules the deferred completion notification, keyed to the
// cycle so a reset in the meantime cancels it.
func (m Model) settleCmd(outcome Mode) tea.Cmd {
	id, cycle := m.id, m.machine.cycle
	return tea.Tick(m.cfg.TransitionDuration, func(time.Time) tea.Msg {
		return doneTimerMsg{id: id, cycle: cycle, outcome: outcome}
	})
}

func (m Model) snapshot() frame {
	return frame{
		mode:       m.machine.current,
		next:       m.machine.next,
		progress:   m.machine.progress,
		transition: m.machine.transition,
		arcStart:   m.arcStart,
		geom:       m.geom,
		cfg:        m.cfg,
	}
}
