// Package icon provides a multi-variant rendering engine for UI symbols and
// feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/spf13/viper"

	"github.com/prism-cli/prism/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a UI symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Warning
	Progress
	Question
	Swatch
)

// iconDef encapsulates the representations of a single symbol across all
// supported variants.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "[ok]",
		kaomoji: "(￣▽￣)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "[err]",
		kaomoji: "(╯°□°)╯",
		squares: "🟥",
	},
	Warning: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "[warn]",
		kaomoji: "(-_-;)",
		squares: "🟨",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・・?)",
		squares: "🟦",
	},
	Question: {
		emoji:   "❓",
		nerd:    "",
		plain:   "[?]",
		kaomoji: "(°ロ°)",
		squares: "🟪",
	},
	Swatch: {
		emoji:   "🎨",
		nerd:    "",
		plain:   "[#]",
		kaomoji: "(o^▽^o)",
		squares: "⬛",
	},
}

// Get retrieves the representation for the receiver based on the configured
// icons variant.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for an Icon from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
