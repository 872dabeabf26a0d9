package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseHex(t *testing.T) {
	Convey("ParseHex", t, func() {
		Convey("Parses 6-digit payloads with or without #", func() {
			So(mustParse(t, "#ff8040"), ShouldResemble, RGB{R: 255, G: 128, B: 64})
			So(mustParse(t, "ff8040"), ShouldResemble, RGB{R: 255, G: 128, B: 64})
		})

		Convey("Doubles 3-digit payloads", func() {
			So(mustParse(t, "#f0a"), ShouldResemble, RGB{R: 0xff, G: 0x00, B: 0xaa})
		})

		Convey("Rejects non-hex characters anywhere in the payload", func() {
			for _, input := range []string{"#gggggg", "#12", "", "#12345", "#ff80zz", "#ффффф"} {
				_, err := ParseHex(input)
				So(err, ShouldNotBeNil)

				parseErr, ok := err.(*ParseError)
				So(ok, ShouldBeTrue)
				So(parseErr.Kind, ShouldEqual, KindMalformedHex)
			}
		})
	})
}

func TestHexOrDefault(t *testing.T) {
	Convey("HexOrDefault degrades malformed input to black", t, func() {
		So(HexOrDefault("#gggggg"), ShouldResemble, RGB{})
		So(HexOrDefault("#12"), ShouldResemble, RGB{})
		So(HexOrDefault(""), ShouldResemble, RGB{})
		So(HexOrDefault("#ff8040"), ShouldResemble, RGB{R: 255, G: 128, B: 64})
	})
}

func TestParseFunctions(t *testing.T) {
	Convey("rgb() function strings", t, func() {
		So(mustParse(t, "rgb(255, 128, 64)"), ShouldResemble, RGB{R: 255, G: 128, B: 64})
		So(mustParse(t, "rgb(0,0,0)"), ShouldResemble, RGB{})

		Convey("Alpha is accepted syntactically and ignored", func() {
			So(mustParse(t, "rgba(255, 128, 64, 0.5)"), ShouldResemble, RGB{R: 255, G: 128, B: 64})
		})

		Convey("Out-of-range channels fail", func() {
			_, err := Parse("rgb(300, 0, 0)")
			So(err, ShouldNotBeNil)
		})

		Convey("Malformed bodies fail", func() {
			_, err := Parse("rgb(1, 2)")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("hsl() function strings", t, func() {
		So(mustParse(t, "hsl(0, 100%, 50%)"), ShouldResemble, RGB{R: 255})
		So(mustParse(t, "hsl(120, 100%, 50%)"), ShouldResemble, RGB{G: 255})

		Convey("Negative hues are normalized", func() {
			So(mustParse(t, "hsl(-240, 100%, 50%)"), ShouldResemble, mustParse(t, "hsl(120, 100%, 50%)"))
		})

		Convey("Percentages above 100 fail", func() {
			_, err := Parse("hsl(0, 150%, 50%)")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLookup(t *testing.T) {
	Convey("Named colors", t, func() {
		So(mustParse(t, "red"), ShouldResemble, RGB{R: 255})
		So(mustParse(t, "RebeccaPurple"), ShouldResemble, RGB{R: 0x66, G: 0x33, B: 0x99})

		Convey("Unknown names fail with a suggestion", func() {
			_, err := Lookup("gren")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "did you mean")
		})
	})
}

func TestFromInt(t *testing.T) {
	Convey("FromInt extracts channels by shifting", t, func() {
		So(FromInt(0xff8040), ShouldResemble, RGB{R: 255, G: 128, B: 64})

		Convey("Excess high bits are masked off", func() {
			So(FromInt(0x12ff8040), ShouldResemble, RGB{R: 255, G: 128, B: 64})
		})
	})
}

func TestFromTriple(t *testing.T) {
	Convey("FromTriple clamps out-of-range channels", t, func() {
		So(FromTriple(300, -20, 64), ShouldResemble, RGB{R: 255, G: 0, B: 64})
		So(FromTriple(1, 2, 3), ShouldResemble, RGB{R: 1, G: 2, B: 3})
	})
}

func TestCanonicalize(t *testing.T) {
	Convey("Canonicalize accepts every supported representation", t, func() {
		So(mustCanonicalize(t, "#ff8040"), ShouldResemble, RGB{R: 255, G: 128, B: 64})
		So(mustCanonicalize(t, 0xff8040), ShouldResemble, RGB{R: 255, G: 128, B: 64})
		So(mustCanonicalize(t, [3]int{255, 128, 64}), ShouldResemble, RGB{R: 255, G: 128, B: 64})
		So(mustCanonicalize(t, []int{255, 128, 64}), ShouldResemble, RGB{R: 255, G: 128, B: 64})
		So(mustCanonicalize(t, RGB{R: 1}), ShouldResemble, RGB{R: 1})
		So(mustCanonicalize(t, HSL{H: 0, S: 100, L: 50}), ShouldResemble, RGB{R: 255})

		Convey("Wrong-length slices fail", func() {
			_, err := Canonicalize([]int{1, 2})
			So(err, ShouldNotBeNil)
		})

		Convey("Unsupported types fail", func() {
			_, err := Canonicalize(3.14)
			So(err, ShouldNotBeNil)
		})
	})
}

func mustParse(t *testing.T, input string) RGB {
	t.Helper()
	parsed, err := Parse(input)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return parsed
}

func mustCanonicalize(t *testing.T, input any) RGB {
	t.Helper()
	canonical, err := Canonicalize(input)
	if err != nil {
		t.Fatalf("canonicalize %v: %v", input, err)
	}
	return canonical
}
