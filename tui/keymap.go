package tui

import "github.com/charmbracelet/bubbles/key"

// keymap defines the keyboard interactions available in the preview.
type keymap struct {
	quit, forceQuit,
	cycleInterpolation,
	cycleSpin,
	randomize key.Binding
}

func newKeymap() keymap {
	return keymap{
		quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		cycleInterpolation: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "interpolation"),
		),
		cycleSpin: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "hue spin"),
		),
		randomize: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "random stops"),
		),
	}
}
