// Package theme provides the semantic styling helpers used across command
// output, bound to the capability resolved at startup.
package theme

import (
	"github.com/prism-cli/prism/style"
	"github.com/prism-cli/prism/terminal"
)

var capability = terminal.Capability{Level: style.LevelBasic}

// Init binds the theme to the session capability. Called once from the root
// command before any output is produced.
func Init(c terminal.Capability) {
	capability = c
}

// Capability returns the capability the theme renders against.
func Capability() terminal.Capability {
	return capability
}

// Base returns an empty style bound to the session capability.
func Base() style.Style {
	return style.New(capability.Level, capability.Force)
}

// Semantic rendering helpers. Each reads the capability at call time, so
// output piped to a file stays plain without callers doing anything.
var (
	Success   = func(s string) string { return Base().Green().Apply(s) }
	Fail      = func(s string) string { return Base().Red().Apply(s) }
	Warning   = func(s string) string { return Base().Yellow().Apply(s) }
	Accent    = func(s string) string { return Base().Magenta().Apply(s) }
	Secondary = func(s string) string { return Base().Cyan().Apply(s) }
	Faint     = func(s string) string { return Base().Dim().Apply(s) }
	Bold      = func(s string) string { return Base().Bold().Apply(s) }
	Italic    = func(s string) string { return Base().Italic().Apply(s) }
	Underline = func(s string) string { return Base().Underline().Apply(s) }
)

// Title renders a section heading.
var Title = func(s string) string {
	return Base().Bold().Magenta().Apply(s)
}
