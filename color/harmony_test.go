package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLightnessAndSaturation(t *testing.T) {
	Convey("Lighten/Darken clamp at the bounds", t, func() {
		base := HSL{H: 120, S: 50, L: 50}

		So(Lighten(base, 20), ShouldResemble, HSL{H: 120, S: 50, L: 70})
		So(Lighten(base, 80), ShouldResemble, HSL{H: 120, S: 50, L: 100})
		So(Darken(base, 80), ShouldResemble, HSL{H: 120, S: 50, L: 0})

		Convey("The input is never mutated", func() {
			So(base, ShouldResemble, HSL{H: 120, S: 50, L: 50})
		})
	})

	Convey("Saturate/Desaturate clamp at the bounds", t, func() {
		base := HSL{H: 120, S: 50, L: 50}

		So(Saturate(base, 60), ShouldResemble, HSL{H: 120, S: 100, L: 50})
		So(Desaturate(base, 60), ShouldResemble, HSL{H: 120, S: 0, L: 50})
	})
}

func TestHueRotations(t *testing.T) {
	Convey("AdjustHue wraps on the wheel", t, func() {
		So(AdjustHue(HSL{H: 350, S: 50, L: 50}, 20).H, ShouldEqual, 10)
		So(AdjustHue(HSL{H: 10, S: 50, L: 50}, -20).H, ShouldEqual, 350)
	})

	Convey("Complement is 180 degrees away", t, func() {
		So(Complement(HSL{H: 0, S: 50, L: 50}).H, ShouldEqual, 180)
	})

	Convey("Triadic returns the +120 and +240 rotations", t, func() {
		triad := Triadic(HSL{H: 30, S: 50, L: 50})
		So(triad, ShouldHaveLength, 2)
		So(triad[0].H, ShouldEqual, 150)
		So(triad[1].H, ShouldEqual, 270)
	})

	Convey("SplitComplementary flanks the complement", t, func() {
		split := SplitComplementary(HSL{H: 0, S: 50, L: 50})
		So(split[0].H, ShouldEqual, 150)
		So(split[1].H, ShouldEqual, 210)
	})

	Convey("Analogous steps 30 degrees per entry", t, func() {
		colors := Analogous(HSL{H: 0, S: 50, L: 50}, 3)
		So(colors, ShouldHaveLength, 3)
		So(colors[0].H, ShouldEqual, 30)
		So(colors[1].H, ShouldEqual, 60)
		So(colors[2].H, ShouldEqual, 90)
	})
}

func TestMonochromatic(t *testing.T) {
	Convey("Monochromatic", t, func() {
		base := HSL{H: 120, S: 50, L: 50}

		Convey("count == 1 returns the input unchanged", func() {
			So(Monochromatic(base, 1), ShouldResemble, []HSL{base})
		})

		Convey("count == 0 returns an empty palette", func() {
			So(Monochromatic(base, 0), ShouldBeEmpty)
		})

		Convey("Lightness spreads evenly across [0,100]", func() {
			palette := Monochromatic(base, 5)
			So(palette, ShouldHaveLength, 5)
			So(palette[0].L, ShouldEqual, 0)
			So(palette[2].L, ShouldEqual, 50)
			So(palette[4].L, ShouldEqual, 100)

			for _, entry := range palette {
				So(entry.H, ShouldEqual, base.H)
				So(entry.S, ShouldEqual, base.S)
			}
		})
	})
}

func TestBlend(t *testing.T) {
	Convey("Blend", t, func() {
		red := RGBToHSL(RGB{R: 255})
		blue := RGBToHSL(RGB{B: 255})

		Convey("Ratio 0 yields the first color, ratio 1 the second", func() {
			So(HSLToRGB(Blend(red, blue, 0)), ShouldResemble, RGB{R: 255})
			So(HSLToRGB(Blend(red, blue, 1)), ShouldResemble, RGB{B: 255})
		})

		Convey("Ratio is clamped", func() {
			So(HSLToRGB(Blend(red, blue, 7)), ShouldResemble, RGB{B: 255})
		})

		Convey("Midpoint mixes channelwise", func() {
			mid := HSLToRGB(Blend(red, blue, 0.5))
			So(mid.R, ShouldAlmostEqual, 128, 3)
			So(mid.B, ShouldAlmostEqual, 128, 3)
		})
	})
}

func TestContrast(t *testing.T) {
	Convey("WCAG contrast", t, func() {
		white := RGBToHSL(RGB{R: 255, G: 255, B: 255})
		black := RGBToHSL(RGB{})

		Convey("Black on white is the maximum ratio", func() {
			So(ContrastRatio(black, white), ShouldAlmostEqual, 21, 0.1)
			So(ContrastRatio(white, black), ShouldAlmostEqual, 21, 0.1)
		})

		Convey("A color against itself is 1", func() {
			So(ContrastRatio(white, white), ShouldAlmostEqual, 1, 0.001)
		})

		Convey("Accessibility thresholds are 4.5 and 7", func() {
			So(IsAccessible(black, white, AccessAA), ShouldBeTrue)
			So(IsAccessible(black, white, AccessAAA), ShouldBeTrue)

			gray := RGBToHSL(RGB{R: 150, G: 150, B: 150})
			So(IsAccessible(gray, white, AccessAA), ShouldBeFalse)
		})
	})
}
