package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/prism-cli/prism/log"
	"github.com/prism-cli/prism/util"
)

// FailKind classifies a canonicalization failure.
type FailKind string

const (
	KindMalformedHex FailKind = "malformed_hex"
	KindUnknownName  FailKind = "unknown_name"
	KindBadChannel   FailKind = "bad_channel"
	KindBadFunction  FailKind = "bad_function"
	KindUnsupported  FailKind = "unsupported_input"
	KindEmptyInput   FailKind = "empty_input"
)

// ParseError is a structured validation failure. It is reported to the
// immediate caller, never thrown out of a rendering loop; callers decide
// whether to fall back to an unstyled default or to propagate.
type ParseError struct {
	Kind   FailKind
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// Grammar for the rgb()/rgba() and hsl()/hsla() function strings.
// The alpha group is accepted syntactically and ignored; there is no compositing.
var (
	rgbFuncRe = regexp.MustCompile(`^rgba?\(\s*(?P<r>\d{1,3})\s*,\s*(?P<g>\d{1,3})\s*,\s*(?P<b>\d{1,3})\s*(?:,\s*(?P<a>[0-9]*\.?[0-9]+)\s*)?\)$`)
	hslFuncRe = regexp.MustCompile(`^hsla?\(\s*(?P<h>-?\d{1,4})\s*,\s*(?P<s>\d{1,3})%\s*,\s*(?P<l>\d{1,3})%\s*(?:,\s*(?P<a>[0-9]*\.?[0-9]+)\s*)?\)$`)
)

// Parse canonicalizes a textual color input: a CSS color keyword, a
// "#RGB"/"#RRGGBB" hex literal (the "#" is optional), or an "rgb()"/"hsl()"
// function string.
func Parse(input string) (RGB, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return RGB{}, &ParseError{Kind: KindEmptyInput, Input: input, Reason: "empty color string"}
	}

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba("):
		return parseRGBFunc(s)
	case strings.HasPrefix(lower, "hsl(") || strings.HasPrefix(lower, "hsla("):
		return parseHSLFunc(s)
	case IsNamed(s):
		return Lookup(s)
	default:
		return ParseHex(s)
	}
}

// ParseHex canonicalizes a 3- or 6-digit hex literal, with or without a
// leading "#". The 3-digit form is digit-doubled ("f0a" expands to "ff00aa").
// Any non-hex character anywhere in the payload is a failure.
func ParseHex(input string) (RGB, error) {
	payload := strings.TrimPrefix(strings.TrimSpace(input), "#")

	fail := func(reason string) (RGB, error) {
		return RGB{}, &ParseError{Kind: KindMalformedHex, Input: input, Reason: reason}
	}

	switch len(payload) {
	case 3:
		var expanded strings.Builder
		for i := 0; i < 3; i++ {
			expanded.WriteByte(payload[i])
			expanded.WriteByte(payload[i])
		}
		payload = expanded.String()
	case 6:
	default:
		return fail("hex payload must be 3 or 6 digits")
	}

	packed, err := strconv.ParseUint(payload, 16, 32)
	if err != nil {
		return fail("non-hex character in payload")
	}

	return FromInt(int(packed)), nil
}

// HexOrDefault canonicalizes a hex literal, degrading malformed input to
// black (0,0,0) instead of failing. This keeps a half-parsed channel from
// ever reaching an escape sequence.
func HexOrDefault(input string) RGB {
	parsed, err := ParseHex(input)
	if err != nil {
		log.Warnf("malformed hex %q, falling back to #000000", input)
		return RGB{}
	}
	return parsed
}

// FromInt canonicalizes a 24-bit packed integer. Excess high bits are masked off.
func FromInt(n int) RGB {
	n &= 0xFFFFFF
	return RGB{
		R: uint8((n >> 16) & 0xFF),
		G: uint8((n >> 8) & 0xFF),
		B: uint8(n & 0xFF),
	}
}

// FromTriple canonicalizes an explicit [r,g,b] triple. Out-of-range channels
// are clamped with a recorded warning, not rejected.
func FromTriple(r, g, b int) RGB {
	clampChannel := func(label string, v int) uint8 {
		clamped := util.Clamp(v, 0, 255)
		if clamped != v {
			log.Warnf("%s channel %d out of range, clamped to %d", label, v, clamped)
		}
		return uint8(clamped)
	}

	return RGB{
		R: clampChannel("red", r),
		G: clampChannel("green", g),
		B: clampChannel("blue", b),
	}
}

// Canonicalize accepts any supported color input representation and resolves
// it to RGB: a string (name, hex, function string), a 24-bit integer, an
// explicit triple, or an already-canonical RGB/HSL value.
func Canonicalize(input any) (RGB, error) {
	switch v := input.(type) {
	case RGB:
		return v, nil
	case HSL:
		return HSLToRGB(v), nil
	case string:
		return Parse(v)
	case int:
		return FromInt(v), nil
	case int64:
		return FromInt(int(v)), nil
	case [3]int:
		return FromTriple(v[0], v[1], v[2]), nil
	case []int:
		if len(v) != 3 {
			return RGB{}, &ParseError{
				Kind:   KindBadChannel,
				Input:  fmt.Sprint(v),
				Reason: fmt.Sprintf("triple must have exactly 3 channels, got %d", len(v)),
			}
		}
		return FromTriple(v[0], v[1], v[2]), nil
	default:
		return RGB{}, &ParseError{
			Kind:   KindUnsupported,
			Input:  fmt.Sprint(input),
			Reason: fmt.Sprintf("unsupported input type %T", input),
		}
	}
}

func parseRGBFunc(s string) (RGB, error) {
	groups := util.ReGroups(rgbFuncRe, strings.ToLower(s))
	if len(groups) == 0 {
		return RGB{}, &ParseError{Kind: KindBadFunction, Input: s, Reason: "does not match rgb(r,g,b[,a])"}
	}

	channel := func(name string) (uint8, error) {
		v, err := strconv.ParseUint(groups[name], 10, 16)
		if err != nil || v > 255 {
			return 0, &ParseError{
				Kind:   KindBadChannel,
				Input:  s,
				Reason: name + " channel must be an integer in [0,255]",
			}
		}
		return uint8(v), nil
	}

	r, err := channel("r")
	if err != nil {
		return RGB{}, err
	}
	g, err := channel("g")
	if err != nil {
		return RGB{}, err
	}
	b, err := channel("b")
	if err != nil {
		return RGB{}, err
	}

	return RGB{R: r, G: g, B: b}, nil
}

func parseHSLFunc(s string) (RGB, error) {
	groups := util.ReGroups(hslFuncRe, strings.ToLower(s))
	if len(groups) == 0 {
		return RGB{}, &ParseError{Kind: KindBadFunction, Input: s, Reason: "does not match hsl(h,s%,l%[,a])"}
	}

	h, err := strconv.Atoi(groups["h"])
	if err != nil {
		return RGB{}, &ParseError{Kind: KindBadChannel, Input: s, Reason: "hue must be an integer"}
	}

	percent := func(name string) (int, error) {
		v, err := strconv.Atoi(groups[name])
		if err != nil || v < 0 || v > 100 {
			return 0, &ParseError{
				Kind:   KindBadChannel,
				Input:  s,
				Reason: name + " must be a percentage in [0,100]",
			}
		}
		return v, nil
	}

	saturation, err := percent("s")
	if err != nil {
		return RGB{}, err
	}
	lightness, err := percent("l")
	if err != nil {
		return RGB{}, err
	}

	return HSLToRGB(HSL{H: NormalizeHue(h), S: saturation, L: lightness}), nil
}
