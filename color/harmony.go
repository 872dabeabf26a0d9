package color

import (
	"math"

	"github.com/prism-cli/prism/util"
	"github.com/samber/lo"
)

// Derived palette operations. All are pure functions over HSL producing new
// values; nothing here mutates its receiver or arguments.

// Lighten raises lightness by amount percentage points, clamped to [0,100].
func Lighten(c HSL, amount int) HSL {
	return HSL{H: c.H, S: c.S, L: util.Clamp(c.L+amount, 0, 100)}
}

// Darken lowers lightness by amount percentage points, clamped to [0,100].
func Darken(c HSL, amount int) HSL {
	return Lighten(c, -amount)
}

// Saturate raises saturation by amount percentage points, clamped to [0,100].
func Saturate(c HSL, amount int) HSL {
	return HSL{H: c.H, S: util.Clamp(c.S+amount, 0, 100), L: c.L}
}

// Desaturate lowers saturation by amount percentage points, clamped to [0,100].
func Desaturate(c HSL, amount int) HSL {
	return Saturate(c, -amount)
}

// AdjustHue rotates the hue by degrees, wrapping on the color wheel.
func AdjustHue(c HSL, degrees int) HSL {
	return HSL{H: NormalizeHue(c.H + degrees), S: c.S, L: c.L}
}

// Complement returns the color opposite on the wheel.
func Complement(c HSL) HSL {
	return AdjustHue(c, 180)
}

// Triadic returns the two colors forming an equilateral triangle with c.
func Triadic(c HSL) []HSL {
	return []HSL{AdjustHue(c, 120), AdjustHue(c, 240)}
}

// SplitComplementary returns the two colors adjacent to the complement.
func SplitComplementary(c HSL) []HSL {
	return []HSL{AdjustHue(c, 150), AdjustHue(c, 210)}
}

// Analogous returns count colors stepping 30 degrees from the base hue.
func Analogous(c HSL, count int) []HSL {
	return lo.Map(lo.Range(count), func(i int, _ int) HSL {
		return AdjustHue(c, 30*(i+1))
	})
}

// Monochromatic returns count colors sharing c's hue and saturation with
// lightness spread evenly across [0,100].
//
// count == 1 short-circuits to the input unchanged: the step formula
// 100/(count-1) divides by zero otherwise and must never propagate.
func Monochromatic(c HSL, count int) []HSL {
	if count < 1 {
		return []HSL{}
	}
	if count == 1 {
		return []HSL{c}
	}

	step := 100 / float64(count-1)
	return lo.Map(lo.Range(count), func(i int, _ int) HSL {
		return HSL{H: c.H, S: c.S, L: util.Clamp(int(math.Round(float64(i)*step)), 0, 100)}
	})
}

// Blend mixes two colors channelwise in RGB space and converts back,
// with ratio 0 yielding a and ratio 1 yielding b.
func Blend(a, b HSL, ratio float64) HSL {
	ratio = math.Min(math.Max(ratio, 0), 1)

	from := HSLToRGB(a)
	to := HSLToRGB(b)

	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*ratio))
	}

	return RGBToHSL(RGB{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
	})
}

// Luminance returns the WCAG relative luminance of a color in [0,1]:
// gamma-corrected channels combined as 0.2126R + 0.7152G + 0.0722B.
func Luminance(c RGB) float64 {
	linearize := func(channel uint8) float64 {
		f := float64(channel) / 255
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}

	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// ContrastRatio returns the WCAG contrast ratio (L1+0.05)/(L2+0.05) between
// two colors, always >= 1.
func ContrastRatio(a, b HSL) float64 {
	la := Luminance(HSLToRGB(a))
	lb := Luminance(HSLToRGB(b))

	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)

	return (lighter + 0.05) / (darker + 0.05)
}

// AccessLevel is a WCAG conformance tier.
type AccessLevel string

const (
	AccessAA  AccessLevel = "AA"  // contrast >= 4.5
	AccessAAA AccessLevel = "AAA" // contrast >= 7
)

// IsAccessible reports whether the contrast between the two colors meets the
// requested WCAG tier.
func IsAccessible(a, b HSL, level AccessLevel) bool {
	ratio := ContrastRatio(a, b)
	if level == AccessAAA {
		return ratio >= 7
	}
	return ratio >= 4.5
}
