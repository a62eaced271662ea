// Package ui hosts the dash indicator in a small interactive program: a
// download source feeds progress events through a channel, keys trigger the
// classic demo scenarios, and the widget's DoneMsg surfaces as a toast line.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dashring/internal/dash"
	"dashring/internal/model"
	"dashring/internal/progress"
	"dashring/internal/scenario"
	"dashring/internal/util/format"
)

// Source is any download feeding the indicator: it runs to completion,
// reporting through the Reporter, and respects context cancellation.
type Source func(ctx context.Context, rep progress.Reporter)

type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	opts model.CLIOptions
	dash dash.Model

	// source is the download launched at startup (nil for the bare demo).
	source    Source
	runCancel context.CancelFunc

	keys   keyMap
	help   help.Model
	styles Styles

	width, height int
	status        string
	toast         string
	toastStyle    int // toastNone/toastSuccess/toastError/toastWarning

	// Internal event channel the reporter feeds tea messages through.
	eventCh chan tea.Msg
}

const (
	toastNone = iota
	toastSuccess
	toastError
	toastWarning
)

func NewModel(ctx context.Context, opts model.CLIOptions, src Source) Model {
	c, cancel := context.WithCancel(ctx)
	return Model{
		ctx:     c,
		cancel:  cancel,
		opts:    opts,
		dash:    newDash(opts),
		source:  src,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  defaultStyles(),
		eventCh: make(chan tea.Msg, 256),
	}
}

func newDash(opts model.CLIOptions) dash.Model {
	dopts := []dash.Option{
		dash.WithShowPercent(opts.ShowPercent),
	}
	if opts.Diameter > 0 {
		dopts = append(dopts, dash.WithDiameter(opts.Diameter))
	}
	if opts.RingColor != "" {
		dopts = append(dopts, dash.WithRingColor(opts.RingColor))
	}
	if opts.ArcColor != "" {
		dopts = append(dopts, dash.WithArcColor(opts.ArcColor))
	}
	if opts.SuccessColor != "" {
		dopts = append(dopts, dash.WithSuccessColor(opts.SuccessColor))
	}
	if opts.FailureColor != "" {
		dopts = append(dopts, dash.WithFailureColor(opts.FailureColor))
	}
	if opts.UnknownColor != "" {
		dopts = append(dopts, dash.WithUnknownColor(opts.UnknownColor))
	}
	if opts.TextFrom != "" && opts.TextTo != "" {
		dopts = append(dopts, dash.WithTextColors(opts.TextFrom, opts.TextTo))
	}
	if opts.SweepSpeed > 0 {
		dopts = append(dopts, dash.WithSweepSpeed(opts.SweepSpeed))
	}
	if opts.ArcLength > 0 {
		dopts = append(dopts, dash.WithArcLength(opts.ArcLength))
	}
	return dash.New(dopts...)
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listenEventsCmd()}
	if m.source != nil {
		cmds = append(cmds, m.startSourceCmd(m.source))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Re-arm the channel listener only after it delivered something, so the
	// number of pending listeners stays constant.
	relisten := false

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Success):
			return m.startScenario("success")
		case key.Matches(msg, m.keys.Failure):
			return m.startScenario("failure")
		case key.Matches(msg, m.keys.Unknown):
			return m.startScenario("unknown")
		case key.Matches(msg, m.keys.Reset):
			m.stopRun()
			m.dash = m.dash.Reset()
			m.status = ""
			m.toast = ""
			m.toastStyle = toastNone
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.dash = m.dash.SetSize(widgetBounds(m.opts.Diameter, msg.Width, msg.Height))

	case sourceStartedMsg:
		m.runCancel = msg.cancel

	case progressMsg:
		relisten = true
		u := msg.U
		percent := u.Percent
		if percent < 0 {
			// Unknown total: keep the arc spinning at full speed.
			percent = 0
		}
		var cmd tea.Cmd
		m.dash, cmd = m.dash.SetProgress(percent)
		cmds = append(cmds, cmd)
		m.status = statusLine(u)

	case resultMsg:
		relisten = true
		var cmd tea.Cmd
		switch msg.R.Outcome {
		case progress.OutcomeSuccess:
			m.dash, cmd = m.dash.ShowSuccess()
		case progress.OutcomeFailure:
			m.dash, cmd = m.dash.ShowFailure()
		case progress.OutcomeUnknown:
			m.dash, cmd = m.dash.ShowUnknown()
		}
		cmds = append(cmds, cmd)
		if msg.R.Err != nil {
			m.status = msg.R.Err.Error()
		}

	case dash.DoneMsg:
		m.toast, m.toastStyle = toastFor(msg.Outcome)
	}

	// The widget's own frame and timer messages flow through here as well.
	var cmd tea.Cmd
	m.dash, cmd = m.dash.Update(msg)
	cmds = append(cmds, cmd)
	if relisten {
		cmds = append(cmds, m.listenEventsCmd())
	}
	return m, tea.Batch(cmds...)
}

// startScenario resets the widget and plays one of the scripted demos,
// mirroring the original demo buttons.
func (m Model) startScenario(outcome string) (Model, tea.Cmd) {
	plan, err := scenario.ForOutcome(outcome)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.stopRun()
	m.dash = m.dash.Reset()
	m.status = ""
	m.toast = ""
	m.toastStyle = toastNone
	return m, m.startSourceCmd(plan.Run)
}

// startSourceCmd launches a source goroutine reporting into the event
// channel. Each run gets its own cancellable context so a new scenario or a
// reset stops the previous one; the cancel handle travels back on the
// started message.
func (m Model) startSourceCmd(src Source) tea.Cmd {
	runCtx, cancel := context.WithCancel(m.ctx)
	rep := teaReporter{ch: m.eventCh, ctx: runCtx}
	return func() tea.Msg {
		go src(runCtx, rep)
		return sourceStartedMsg{cancel: cancel}
	}
}

func (m *Model) stopRun() {
	if m.runCancel != nil {
		m.runCancel()
		m.runCancel = nil
	}
}

func (m Model) listenEventsCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case msg := <-m.eventCh:
			return msg
		}
	}
}

// widgetBounds fits the indicator into the terminal: the configured diameter
// when it fits, shrunk to leave room for the header, toast, and help chrome
// when it doesn't.
func widgetBounds(diameter, width, height int) (cols, rows int) {
	rows = diameter
	if rows <= 0 {
		rows = dash.DefaultDiameter
	}
	const chrome = 9
	if avail := height - chrome; avail > 0 && avail < rows {
		rows = avail
	}
	cols = rows * 2
	if width > 0 && cols > width {
		cols = width
	}
	return cols, rows
}

func statusLine(u progress.Update) string {
	s := u.Message
	if s == "" {
		s = format.Percent(u.Percent)
	}
	if u.Speed != "" {
		s += " at " + u.Speed
	}
	return s
}

func toastFor(outcome dash.Mode) (string, int) {
	switch outcome {
	case dash.ModeSuccess:
		return "Download Successful!", toastSuccess
	case dash.ModeFailure:
		return "Download Failed!", toastError
	case dash.ModeUnknown:
		return "Unknown Download Error!", toastWarning
	default:
		return "", toastNone
	}
}

// teaReporter adapts the progress contract to tea messages. Updates are
// dropped when the channel is saturated; results always get through unless
// the run was cancelled.
type teaReporter struct {
	ch  chan tea.Msg
	ctx context.Context
}

func (r teaReporter) Update(u progress.Update) {
	select {
	case r.ch <- progressMsg{U: u}:
	default:
	}
}

func (r teaReporter) Result(res progress.Result) {
	select {
	case r.ch <- resultMsg{R: res}:
	case <-r.ctx.Done():
	}
}
