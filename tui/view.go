package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/prism-cli/prism/gradient"
	"github.com/prism-cli/prism/theme"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(theme.Text).
			Background(theme.AccentColor).
			Padding(0, 1)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderColor).
			Padding(1, 2)

	statusStyle = lipgloss.NewStyle().Foreground(theme.Subtext)
	errorStyle  = lipgloss.NewStyle().Foreground(theme.ErrorColor)
	helpStyle   = lipgloss.NewStyle().Foreground(theme.FaintColor)
)

func (b *bubble) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render("gradient preview"))
	sections = append(sections, b.input.View())

	rendered, err := b.renderer.Render(b.options.Text, b.stops, gradient.Options{
		Interpolation: b.options.Interpolation,
		Spin:          b.options.Spin,
		Level:         b.options.Capability.Level,
		Force:         b.options.Capability.Force,
	})
	if err != nil {
		rendered = b.options.Text
	}
	sections = append(sections, previewStyle.Render(rendered))

	sections = append(sections, statusStyle.Render(b.statusLine()))

	if b.parseErr != nil {
		sections = append(sections, errorStyle.Render(b.parseErr.Error()))
	}

	sections = append(sections, helpStyle.Render(
		"ctrl+t interpolation • ctrl+s hue spin • ctrl+r random stops • esc quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (b *bubble) statusLine() string {
	var status strings.Builder

	status.WriteString("interpolation: ")
	if b.options.Interpolation == gradient.HSV {
		status.WriteString("hsv, spin: ")
		if b.options.Spin == gradient.SpinLong {
			status.WriteString("long")
		} else {
			status.WriteString("short")
		}
	} else {
		status.WriteString("linear")
	}

	return status.String()
}
