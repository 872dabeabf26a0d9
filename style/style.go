package style

import (
	"strings"

	"github.com/prism-cli/prism/color"
)

// Style is an immutable ordered set of open SGR codes and their matching
// resets, bound to a capability context. Every mutator returns a new Style;
// a receiver is never modified in place, so partially built styles can be
// shared and extended freely.
type Style struct {
	codes []code
	level Level
	force bool
}

// New returns an empty style bound to the given capability context.
// force makes the style emit true-color sequences regardless of level.
func New(level Level, force bool) Style {
	return Style{level: level, force: force}
}

// Level returns the capability tier the style renders against.
func (s Style) Level() Level {
	return s.level
}

// Forced reports whether output is forced regardless of the level.
func (s Style) Forced() bool {
	return s.force
}

// add returns a copy of the style with c appended. A foreground or
// background code first removes any existing code of the same category,
// searching from the end and preserving the relative order of the remainder,
// so the last color call wins instead of accumulating dead codes.
func (s Style) add(c code) Style {
	codes := make([]code, len(s.codes), len(s.codes)+1)
	copy(codes, s.codes)

	if c.category != CategoryAttribute {
		for i := len(codes) - 1; i >= 0; i-- {
			if codes[i].category == c.category {
				codes = append(codes[:i], codes[i+1:]...)
			}
		}
	}

	codes = append(codes, c)
	return Style{codes: codes, level: s.level, force: s.force}
}

// AddSGR appends a raw SGR parameter, deriving its category from the numeric
// range or the 38;/48; prefix.
func (s Style) AddSGR(param string) (Style, error) {
	c, err := classifySGR(param)
	if err != nil {
		return s, err
	}
	return s.add(c), nil
}

// Foreground sets an arbitrary RGB foreground, replacing any previous one.
func (s Style) Foreground(c color.RGB) Style {
	return s.add(code{category: CategoryForeground, kind: kindRGB, rgb: c, close: closeForeground})
}

// Background sets an arbitrary RGB background, replacing any previous one.
func (s Style) Background(c color.RGB) Style {
	return s.add(code{category: CategoryBackground, kind: kindRGB, rgb: c, close: closeBackground})
}

// Ansi256 sets a foreground from the 256-color palette.
func (s Style) Ansi256(index uint8) Style {
	return s.add(code{category: CategoryForeground, kind: kindAnsi256, index: index, close: closeForeground})
}

// BgAnsi256 sets a background from the 256-color palette.
func (s Style) BgAnsi256(index uint8) Style {
	return s.add(code{category: CategoryBackground, kind: kindAnsi256, index: index, close: closeBackground})
}

func (s Style) basicFg(n int) Style {
	return s.add(code{category: CategoryForeground, kind: kindBasic, basic: n, close: closeForeground})
}

func (s Style) basicBg(n int) Style {
	return s.add(code{category: CategoryBackground, kind: kindBasic, basic: n, close: closeBackground})
}

func (s Style) attribute(param string) Style {
	return s.add(code{category: CategoryAttribute, kind: kindAttribute, attr: param, close: attributes[param]})
}

// Emphasis attributes. These accumulate without limit.

func (s Style) Bold() Style          { return s.attribute("1") }
func (s Style) Dim() Style           { return s.attribute("2") }
func (s Style) Italic() Style        { return s.attribute("3") }
func (s Style) Underline() Style     { return s.attribute("4") }
func (s Style) Inverse() Style       { return s.attribute("7") }
func (s Style) Hidden() Style        { return s.attribute("8") }
func (s Style) Strikethrough() Style { return s.attribute("9") }

// Basic 16-color foregrounds. These survive downgrade to the 16-color tier.

func (s Style) Black() Style   { return s.basicFg(30) }
func (s Style) Red() Style     { return s.basicFg(31) }
func (s Style) Green() Style   { return s.basicFg(32) }
func (s Style) Yellow() Style  { return s.basicFg(33) }
func (s Style) Blue() Style    { return s.basicFg(34) }
func (s Style) Magenta() Style { return s.basicFg(35) }
func (s Style) Cyan() Style    { return s.basicFg(36) }
func (s Style) White() Style   { return s.basicFg(37) }

func (s Style) BrightBlack() Style   { return s.basicFg(90) }
func (s Style) BrightRed() Style     { return s.basicFg(91) }
func (s Style) BrightGreen() Style   { return s.basicFg(92) }
func (s Style) BrightYellow() Style  { return s.basicFg(93) }
func (s Style) BrightBlue() Style    { return s.basicFg(94) }
func (s Style) BrightMagenta() Style { return s.basicFg(95) }
func (s Style) BrightCyan() Style    { return s.basicFg(96) }
func (s Style) BrightWhite() Style   { return s.basicFg(97) }

// Basic 16-color backgrounds.

func (s Style) BgBlack() Style   { return s.basicBg(40) }
func (s Style) BgRed() Style     { return s.basicBg(41) }
func (s Style) BgGreen() Style   { return s.basicBg(42) }
func (s Style) BgYellow() Style  { return s.basicBg(43) }
func (s Style) BgBlue() Style    { return s.basicBg(44) }
func (s Style) BgMagenta() Style { return s.basicBg(45) }
func (s Style) BgCyan() Style    { return s.basicBg(46) }
func (s Style) BgWhite() Style   { return s.basicBg(47) }

// Apply wraps text in the composed escape sequences.
//
// With no capability (and no force) or no codes, the text passes through
// untouched; this matters for machine-readable output piped to non-terminals.
// Resets unwind in reverse-of-application order.
func (s Style) Apply(text string) string {
	if (!s.force && s.level == LevelNone) || len(s.codes) == 0 {
		return text
	}

	// A forced style renders at full depth regardless of the detected level.
	level := s.level
	if s.force {
		level = LevelTrueColor
	}

	opens := make([]string, 0, len(s.codes))
	closes := make([]string, 0, len(s.codes))
	for _, c := range s.codes {
		param, ok := c.params(level)
		if !ok {
			continue
		}
		opens = append(opens, param)
		closes = append([]string{c.close}, closes...)
	}

	if len(opens) == 0 {
		return text
	}

	var b strings.Builder
	for _, param := range opens {
		b.WriteString("\x1b[")
		b.WriteString(param)
		b.WriteString("m")
	}
	b.WriteString(text)
	for _, param := range closes {
		b.WriteString("\x1b[")
		b.WriteString(param)
		b.WriteString("m")
	}
	return b.String()
}

// Render is an alias for Apply.
func (s Style) Render(text string) string {
	return s.Apply(text)
}
