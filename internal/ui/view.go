package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("dashring"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(m.subtitle()))
	b.WriteString("\n\n")

	widget := m.styles.Widget.Render(m.dash.View())
	if m.width > 0 {
		widget = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, widget)
	}
	b.WriteString(widget)
	b.WriteString("\n")

	if line := m.toastLine(); line != "" {
		if m.width > 0 {
			line = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
		}
		b.WriteString(line)
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m Model) subtitle() string {
	if m.opts.URL != "" {
		return "downloading " + m.opts.URL
	}
	return "animated download indicator"
}

func (m Model) toastLine() string {
	switch m.toastStyle {
	case toastSuccess:
		return m.styles.Success.Render(m.toast)
	case toastError:
		return m.styles.Error.Render(m.toast)
	case toastWarning:
		return m.styles.Warning.Render(m.toast)
	default:
		return ""
	}
}
