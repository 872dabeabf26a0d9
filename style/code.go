// Package style implements immutable, conflict-resolved composition of SGR
// escape sequences with capability-aware downgrade.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/prism-cli/prism/color"
)

// Level is the terminal capability tier the composer renders against.
type Level uint8

const (
	LevelNone      Level = iota // no color
	LevelBasic                  // 16-color
	Level256                    // 256-color
	LevelTrueColor              // 24-bit true color
)

// ParseLevel resolves a configuration string ("0".."3") to a Level.
func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 3 {
		return LevelNone, fmt.Errorf("color level must be 0..3, got %q", s)
	}
	return Level(n), nil
}

// Category partitions SGR parameters by their conflict semantics: at most one
// foreground and one background code may be present at a time, while
// attributes accumulate without limit.
type Category uint8

const (
	CategoryAttribute Category = iota
	CategoryForeground
	CategoryBackground
)

// kind records how a color code was requested, which decides how it
// downgrades: basic codes survive to the 16-color tier, palette and RGB
// requests do not.
type kind uint8

const (
	kindAttribute kind = iota
	kindBasic
	kindAnsi256
	kindRGB
)

// code is one SGR parameter tagged with its category, origin and reset.
type code struct {
	category Category
	kind     kind
	attr     string // parameter for attributes
	basic    int    // 30-37/90-97 or 40-47/100-107
	index    uint8  // 256-color palette index
	rgb      color.RGB
	close    string
}

// Reset parameters for the two color categories.
const (
	closeForeground = "39"
	closeBackground = "49"
)

// attributes maps the supported emphasis parameters to their individual resets.
var attributes = map[string]string{
	"1": "22", // bold
	"2": "22", // dim
	"3": "23", // italic
	"4": "24", // underline
	"7": "27", // inverse
	"8": "28", // hidden
	"9": "29", // strikethrough
}

// params resolves the code to its SGR parameter string at the given level.
// The second return is false when the code is dropped at this capability:
// the 16-color tier drops arbitrary palette/RGB requests rather than
// approximating them, so a caller needing approximation must pre-quantize.
func (c code) params(level Level) (string, bool) {
	colorPrefix := func(mode string) string {
		if c.category == CategoryBackground {
			return "48;" + mode
		}
		return "38;" + mode
	}

	switch c.kind {
	case kindAttribute:
		return c.attr, true
	case kindBasic:
		return strconv.Itoa(c.basic), true
	case kindAnsi256:
		if level < Level256 {
			return "", false
		}
		return colorPrefix("5;") + strconv.Itoa(int(c.index)), true
	default: // kindRGB
		switch {
		case level >= LevelTrueColor:
			return fmt.Sprintf("%s%d;%d;%d", colorPrefix("2;"), c.rgb.R, c.rgb.G, c.rgb.B), true
		case level == Level256:
			return colorPrefix("5;") + strconv.Itoa(int(color.ANSI256(c.rgb))), true
		default:
			return "", false
		}
	}
}

// classifySGR builds a code from a raw SGR parameter string, deriving the
// category from the numeric range or the 38;/48; prefix.
func classifySGR(param string) (code, error) {
	param = strings.TrimSpace(param)

	if close, ok := attributes[param]; ok {
		return code{category: CategoryAttribute, kind: kindAttribute, attr: param, close: close}, nil
	}

	if strings.HasPrefix(param, "38;") || strings.HasPrefix(param, "48;") {
		category := CategoryForeground
		close := closeForeground
		if param[0] == '4' {
			category = CategoryBackground
			close = closeBackground
		}

		fields := strings.Split(param, ";")
		switch {
		case len(fields) == 3 && fields[1] == "5":
			index, err := strconv.ParseUint(fields[2], 10, 8)
			if err != nil {
				return code{}, fmt.Errorf("invalid 256-color index in %q", param)
			}
			return code{category: category, kind: kindAnsi256, index: uint8(index), close: close}, nil
		case len(fields) == 5 && fields[1] == "2":
			var channels [3]uint8
			for i, field := range fields[2:] {
				v, err := strconv.ParseUint(field, 10, 8)
				if err != nil {
					return code{}, fmt.Errorf("invalid RGB channel in %q", param)
				}
				channels[i] = uint8(v)
			}
			rgb := color.RGB{R: channels[0], G: channels[1], B: channels[2]}
			return code{category: category, kind: kindRGB, rgb: rgb, close: close}, nil
		default:
			return code{}, fmt.Errorf("unsupported extended color parameter %q", param)
		}
	}

	n, err := strconv.Atoi(param)
	if err != nil {
		return code{}, fmt.Errorf("unsupported SGR parameter %q", param)
	}

	switch {
	case (n >= 30 && n <= 37) || (n >= 90 && n <= 97):
		return code{category: CategoryForeground, kind: kindBasic, basic: n, close: closeForeground}, nil
	case (n >= 40 && n <= 47) || (n >= 100 && n <= 107):
		return code{category: CategoryBackground, kind: kindBasic, basic: n, close: closeBackground}, nil
	default:
		return code{}, fmt.Errorf("unsupported SGR parameter %q", param)
	}
}
