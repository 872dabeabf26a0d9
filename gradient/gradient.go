// Package gradient renders per-character color gradients across a string,
// interpolating between an ordered list of color stops.
package gradient

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"github.com/prism-cli/prism/cache"
	"github.com/prism-cli/prism/color"
	"github.com/prism-cli/prism/style"
)

// Interpolation selects the color path between two stops.
type Interpolation uint8

const (
	// Linear interpolates each RGB channel independently.
	Linear Interpolation = iota
	// HSV interpolates through hue/saturation/value space with a hue spin.
	HSV
)

// ParseInterpolation resolves a configuration string to an Interpolation.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "hsv":
		return HSV, nil
	default:
		return Linear, fmt.Errorf("interpolation must be linear or hsv, got %q", s)
	}
}

// Spin is the direction a hue interpolation travels around the color wheel.
type Spin uint8

const (
	// SpinShort takes the shorter arc between the two hues.
	SpinShort Spin = iota
	// SpinLong takes the longer arc between the two hues.
	SpinLong
)

// ParseSpin resolves a configuration string to a Spin.
func ParseSpin(s string) (Spin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short":
		return SpinShort, nil
	case "long":
		return SpinLong, nil
	default:
		return SpinShort, fmt.Errorf("hsv spin must be short or long, got %q", s)
	}
}

// Options control interpolation and the capability context of the output.
type Options struct {
	Interpolation Interpolation
	Spin          Spin
	Level         style.Level
	Force         bool
}

// ErrNoStops is returned when a gradient is requested with an empty stop list.
var ErrNoStops = errors.New("gradient requires at least one color stop")

// Renderer renders gradients and memoizes whole rendered results.
// A Renderer owns its cache; parallel hosts must construct one each.
type Renderer struct {
	results *cache.Cache[string]
}

// NewRenderer returns a Renderer with a result cache of the given capacity.
func NewRenderer(capacity int) *Renderer {
	return &Renderer{results: cache.New[string](capacity)}
}

// CacheStats exposes the result cache counters.
func (r *Renderer) CacheStats() cache.Stats {
	return r.results.Stats()
}

// ClearCache resets the result cache and its counters.
func (r *Renderer) ClearCache() {
	r.results.Clear()
}

// ParseStops canonicalizes a list of textual color inputs into gradient stops.
func ParseStops(inputs []string) ([]color.RGB, error) {
	stops := make([]color.RGB, 0, len(inputs))
	for _, input := range inputs {
		stop, err := color.Parse(input)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
	return stops, nil
}

// Render colors each character of text along the gradient defined by stops.
//
// An empty text returns unchanged; a single stop degenerates to a flat style
// application. Whitespace bypasses coloring entirely. Each colored character
// carries its own reset, since consecutive differently-colored characters
// cannot share one open/close wrapper.
func (r *Renderer) Render(text string, stops []color.RGB, opts Options) (string, error) {
	if len(stops) == 0 {
		return "", ErrNoStops
	}
	if len(text) == 0 {
		return text, nil
	}

	if len(stops) == 1 {
		return style.New(opts.Level, opts.Force).Foreground(stops[0]).Apply(text), nil
	}

	// Per-character colors are arbitrary RGB, which the 16-color tier drops
	// rather than approximates, so anything below the 256-color tier renders
	// plain unless forced.
	if !opts.Force && opts.Level < style.Level256 {
		return text, nil
	}

	key := cacheKey(text, stops, opts)
	if cached, ok := r.results.Get(key); ok {
		return cached, nil
	}

	rendered := render(text, stops, opts)
	r.results.Set(key, rendered)
	return rendered, nil
}

func render(text string, stops []color.RGB, opts Options) string {
	runes := []rune(text)
	total := len(runes)
	segments := len(stops) - 1

	var b strings.Builder
	for i, char := range runes {
		switch char {
		case ' ', '\t', '\n', '\r':
			b.WriteRune(char)
			continue
		}

		b.WriteString(openParam(charColor(i, total, segments, stops, opts), opts))
		b.WriteRune(char)
		b.WriteString("\x1b[39m")
	}
	return b.String()
}

// charColor computes the interpolated color of character i out of total.
// Segment boundaries use integer arithmetic throughout so rounding drift
// cannot accumulate across long strings.
func charColor(i, total, segments int, stops []color.RGB, opts Options) color.RGB {
	segment := i * segments / total
	if segment > segments-1 {
		segment = segments - 1
	}

	// Boundaries derived from the same formula: segment s covers the
	// character indices [ceil(s*total/segments), ceil((s+1)*total/segments)).
	start := (segment*total + segments - 1) / segments
	end := ((segment+1)*total + segments - 1) / segments
	if end > total {
		end = total
	}

	span := end - start - 1
	progress := 0.0
	if span > 0 {
		progress = float64(i-start) / float64(span)
	}

	from := stops[segment]
	to := stops[segment+1]

	if opts.Interpolation == HSV {
		return lerpHSV(from, to, progress, opts.Spin)
	}
	return lerpRGB(from, to, progress)
}

func lerpRGB(from, to color.RGB, progress float64) color.RGB {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*progress))
	}
	return color.RGB{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B)}
}

// lerpHSV interpolates through HSV space, shifting one endpoint hue by 360
// so the interpolation takes the arc the spin requests.
func lerpHSV(from, to color.RGB, progress float64, spin Spin) color.RGB {
	h1, s1, v1 := color.RGBToHSV(from)
	h2, s2, v2 := color.RGBToHSV(to)

	delta := h2 - h1
	switch spin {
	case SpinLong:
		if math.Abs(delta) < 180 && delta != 0 {
			if delta > 0 {
				h2 -= 360
			} else {
				h2 += 360
			}
		}
	default:
		if math.Abs(delta) > 180 {
			if delta > 0 {
				h2 -= 360
			} else {
				h2 += 360
			}
		}
	}

	return color.HSVToRGB(
		h1+(h2-h1)*progress,
		s1+(s2-s1)*progress,
		v1+(v2-v1)*progress,
	)
}

func openParam(c color.RGB, opts Options) string {
	if opts.Force || opts.Level >= style.LevelTrueColor {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
	}
	return "\x1b[38;5;" + strconv.Itoa(int(color.ANSI256(c))) + "m"
}

// cacheKey derives the result cache key from the stop colors, the text
// length, a running FNV-1a hash of the text content and the interpolation
// options. Length and content hash both matter: either alone collides.
func cacheKey(text string, stops []color.RGB, opts Options) string {
	digest := fnv.New64a()
	_, _ = digest.Write([]byte(text))

	var b strings.Builder
	fmt.Fprintf(&b, "%d:%x", len(text), digest.Sum64())
	for _, stop := range stops {
		b.WriteString(":")
		b.WriteString(stop.Hex())
	}
	fmt.Fprintf(&b, ":%d:%d:%d:%t", opts.Interpolation, opts.Spin, opts.Level, opts.Force)
	return b.String()
}
