package tui

import (
	"math/rand"
	"strings"

	bkey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/prism-cli/prism/color"
	"github.com/prism-cli/prism/gradient"
)

// bubble is the preview model: an editable stop list and a live rendering
// of the gradient over the sample text.
type bubble struct {
	options  *Options
	keymap   keymap
	input    textinput.Model
	renderer *gradient.Renderer

	stops    []color.RGB
	parseErr error
	width    int
}

func newBubble(options *Options) *bubble {
	input := textinput.New()
	input.Prompt = "stops> "
	input.SetValue(strings.Join(lo.Map(options.Stops, func(c color.RGB, _ int) string {
		return c.Hex()
	}), " "))
	input.Focus()

	return &bubble{
		options:  options,
		keymap:   newKeymap(),
		input:    input,
		renderer: gradient.NewRenderer(16),
		stops:    options.Stops,
	}
}

func (b *bubble) Init() tea.Cmd {
	return textinput.Blink
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		return b, nil

	case tea.KeyMsg:
		switch {
		case bkey.Matches(msg, b.keymap.quit), bkey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit

		case bkey.Matches(msg, b.keymap.cycleInterpolation):
			if b.options.Interpolation == gradient.Linear {
				b.options.Interpolation = gradient.HSV
			} else {
				b.options.Interpolation = gradient.Linear
			}
			return b, nil

		case bkey.Matches(msg, b.keymap.cycleSpin):
			if b.options.Spin == gradient.SpinShort {
				b.options.Spin = gradient.SpinLong
			} else {
				b.options.Spin = gradient.SpinShort
			}
			return b, nil

		case bkey.Matches(msg, b.keymap.randomize):
			b.stops = randomStops(2 + rand.Intn(3))
			b.input.SetValue(strings.Join(lo.Map(b.stops, func(c color.RGB, _ int) string {
				return c.Hex()
			}), " "))
			b.parseErr = nil
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	b.reparse()
	return b, cmd
}

// reparse rebuilds the stop list from the input field, keeping the previous
// stops when the current content does not parse.
func (b *bubble) reparse() {
	fields := strings.Fields(b.input.Value())
	if len(fields) == 0 {
		b.parseErr = gradient.ErrNoStops
		return
	}

	stops, err := gradient.ParseStops(fields)
	b.parseErr = err
	if err == nil {
		b.stops = stops
	}
}

func randomStops(count int) []color.RGB {
	return lo.Map(lo.Range(count), func(_, _ int) color.RGB {
		return color.RGB{
			R: uint8(rand.Intn(256)),
			G: uint8(rand.Intn(256)),
			B: uint8(rand.Intn(256)),
		}
	})
}
