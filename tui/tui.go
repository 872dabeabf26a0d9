// Package tui provides the interactive gradient preview interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prism-cli/prism/color"
	"github.com/prism-cli/prism/gradient"
	"github.com/prism-cli/prism/style"
	"github.com/prism-cli/prism/terminal"
)

// Options encapsulates the runtime configuration for the preview interface.
type Options struct {
	Text          string
	Stops         []color.RGB
	Interpolation gradient.Interpolation
	Spin          gradient.Spin
	Capability    terminal.Capability
}

// Run initializes and executes the Bubble Tea application loop.
func Run(options *Options) error {
	if options.Capability.Level < style.Level256 {
		// The preview edits colors live; without at least the 256-color
		// tier there is nothing to show, so render at full depth.
		options.Capability = terminal.Capability{Level: style.LevelTrueColor, Force: true}
	}

	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}
