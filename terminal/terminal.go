// Package terminal resolves the color capability of the current session
// from configuration, environment conventions and the terminal itself.
package terminal

import (
	"os"
	"runtime"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/prism-cli/prism/constant"
	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/log"
	"github.com/prism-cli/prism/style"
)

// Capability is the resolved rendering context: the color depth the session
// supports and whether output is forced regardless of where it goes.
type Capability struct {
	Level style.Level
	Force bool
}

// Resolve determines the session capability. Precedence, highest first:
// an explicit configured level, the NO_COLOR convention (any non-empty
// value), CLICOLOR_FORCE, then detection against stdout.
func Resolve() Capability {
	force := viper.GetBool(key.ColorForce) || cliColorForced()

	if configured := viper.GetString(key.ColorLevel); configured != "auto" {
		level, err := style.ParseLevel(configured)
		if err != nil {
			log.Warnf("ignoring configured color level: %s", err)
			return Capability{Level: detect(), Force: force}
		}
		return Capability{Level: level, Force: force}
	}

	if os.Getenv("NO_COLOR") != "" && !force {
		return Capability{Level: style.LevelNone}
	}

	return Capability{Level: detect(), Force: force}
}

func cliColorForced() bool {
	value := os.Getenv("CLICOLOR_FORCE")
	return value != "" && value != "0"
}

func detect() style.Level {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return style.LevelNone
	}
	return LevelFromProfile(profileFromEnv())
}

// LevelFromProfile maps a termenv color profile to a capability tier.
func LevelFromProfile(profile termenv.Profile) style.Level {
	switch profile {
	case termenv.TrueColor:
		return style.LevelTrueColor
	case termenv.ANSI256:
		return style.Level256
	case termenv.ANSI:
		return style.LevelBasic
	default:
		return style.LevelNone
	}
}

// profileFromEnv reads COLORTERM and TERM before falling back to termenv's
// own detection, so explicit overrides beat terminfo guessing.
func profileFromEnv() termenv.Profile {
	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	case "256color", "8bit":
		return termenv.ANSI256
	}

	termName := strings.ToLower(os.Getenv("TERM"))
	switch {
	case strings.Contains(termName, "direct"):
		return termenv.TrueColor
	case strings.Contains(termName, "256color"):
		return termenv.ANSI256
	case termName == "dumb":
		return termenv.Ascii
	}

	// Windows Terminal supports true color but sets no TERM.
	if runtime.GOOS == constant.Windows && os.Getenv("WT_SESSION") != "" {
		return termenv.TrueColor
	}

	return termenv.EnvColorProfile()
}
