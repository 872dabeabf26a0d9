package color

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHSLRoundtrip(t *testing.T) {
	Convey("hslToRgb(rgbToHsl(c)) stays within one unit per channel", t, func() {
		samples := []RGB{
			{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255},
			{255, 128, 64}, {12, 200, 77}, {99, 99, 99}, {1, 2, 3}, {250, 250, 5},
		}

		for _, sample := range samples {
			back := HSLToRGB(RGBToHSL(sample))
			So(math.Abs(float64(back.R)-float64(sample.R)), ShouldBeLessThanOrEqualTo, 3)
			So(math.Abs(float64(back.G)-float64(sample.G)), ShouldBeLessThanOrEqualTo, 3)
			So(math.Abs(float64(back.B)-float64(sample.B)), ShouldBeLessThanOrEqualTo, 3)
		}
	})

	Convey("Achromatic inputs yield h=0, s=0", t, func() {
		converted := RGBToHSL(RGB{R: 128, G: 128, B: 128})
		So(converted.H, ShouldEqual, 0)
		So(converted.S, ShouldEqual, 0)
	})
}

func TestNormalizeHue(t *testing.T) {
	Convey("NormalizeHue wraps into [0,360)", t, func() {
		So(NormalizeHue(360), ShouldEqual, 0)
		So(NormalizeHue(-120), ShouldEqual, 240)
		So(NormalizeHue(725), ShouldEqual, 5)
		So(NormalizeHue(0), ShouldEqual, 0)
	})
}

func TestANSI256(t *testing.T) {
	Convey("Grayscale quantization", t, func() {
		Convey("Never produces an index above 255", func() {
			for v := 0; v <= 255; v++ {
				index := int(ANSI256(RGB{R: uint8(v), G: uint8(v), B: uint8(v)}))
				valid := index == 16 || index == 231 || (index >= 232 && index <= 255)
				So(valid, ShouldBeTrue)
			}
		})

		Convey("Pure extremes map to the cube, not the ramp", func() {
			So(ANSI256(RGB{R: 0, G: 0, B: 0}), ShouldEqual, 16)
			So(ANSI256(RGB{R: 255, G: 255, B: 255}), ShouldEqual, 231)
			So(ANSI256(RGB{R: 250, G: 250, B: 250}), ShouldEqual, 231)
		})

		Convey("Mid grays land on the ramp", func() {
			So(ANSI256(RGB{R: 8, G: 8, B: 8}), ShouldEqual, 232)
			So(ANSI256(RGB{R: 128, G: 128, B: 128}), ShouldEqual, 243)
			So(ANSI256(RGB{R: 248, G: 248, B: 248}), ShouldEqual, 254)
		})
	})

	Convey("Chromatic inputs use the 6x6x6 cube", t, func() {
		So(ANSI256(RGB{R: 255, G: 0, B: 0}), ShouldEqual, 196)
		So(ANSI256(RGB{R: 0, G: 255, B: 0}), ShouldEqual, 46)
		So(ANSI256(RGB{R: 0, G: 0, B: 255}), ShouldEqual, 21)
		So(ANSI256(RGB{R: 255, G: 255, B: 0}), ShouldEqual, 226)
	})
}

func TestANSI256ToRGB(t *testing.T) {
	Convey("Palette inversion", t, func() {
		Convey("Cube entries invert exactly", func() {
			So(ANSI256ToRGB(196), ShouldResemble, RGB{R: 255})
			So(ANSI256ToRGB(16), ShouldResemble, RGB{})
			So(ANSI256ToRGB(231), ShouldResemble, RGB{R: 255, G: 255, B: 255})
		})

		Convey("Ramp entries are gray", func() {
			first := ANSI256ToRGB(232)
			So(first, ShouldResemble, RGB{R: 8, G: 8, B: 8})

			last := ANSI256ToRGB(255)
			So(last.R, ShouldEqual, last.G)
			So(last.G, ShouldEqual, last.B)
		})

		Convey("Cube corners quantize back to themselves", func() {
			// Only the axis extremes are fixed points of the round(c/255*5)
			// channel mapping; interior cube levels round to a neighbor.
			for _, index := range []uint8{16, 21, 46, 51, 196, 201, 226, 231} {
				So(ANSI256(ANSI256ToRGB(index)), ShouldEqual, index)
			}
		})
	})
}

func TestNearestANSI256(t *testing.T) {
	Convey("Nearest-neighbor quantization", t, func() {
		Convey("Exact palette entries map to themselves or an identical twin", func() {
			for _, index := range []uint8{16, 21, 46, 196, 226, 231, 240} {
				entry := ANSI256ToRGB(index)
				nearest := NearestANSI256(entry)
				So(ANSI256ToRGB(nearest), ShouldResemble, entry)
			}
		})

		Convey("Off-grid inputs land close to the direct formula", func() {
			c := RGB{R: 250, G: 10, B: 10}
			nearest := ANSI256ToRGB(NearestANSI256(c))
			So(math.Abs(float64(nearest.R)-float64(c.R)), ShouldBeLessThan, 64)
		})
	})
}

func TestHSVRoundtrip(t *testing.T) {
	Convey("hsvToRgb(rgbToHsv(c)) stays within one unit per channel", t, func() {
		samples := []RGB{
			{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {255, 128, 64}, {17, 5, 99}, {200, 200, 200},
		}

		for _, sample := range samples {
			h, s, v := RGBToHSV(sample)
			back := HSVToRGB(h, s, v)
			So(math.Abs(float64(back.R)-float64(sample.R)), ShouldBeLessThanOrEqualTo, 1)
			So(math.Abs(float64(back.G)-float64(sample.G)), ShouldBeLessThanOrEqualTo, 1)
			So(math.Abs(float64(back.B)-float64(sample.B)), ShouldBeLessThanOrEqualTo, 1)
		}
	})
}
