package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMemo(t *testing.T) {
	Convey("Given a conversion memo", t, func() {
		memo := NewMemo(4, 4, 4)

		Convey("Repeated hex parses hit the cache", func() {
			first, err := memo.ParseHex("#ff8040")
			So(err, ShouldBeNil)

			second, err := memo.ParseHex("FF8040")
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)

			stats := memo.Stats()["hex"]
			So(stats.Hits, ShouldEqual, 1)
			So(stats.Misses, ShouldEqual, 1)
		})

		Convey("Malformed hex is not cached", func() {
			_, err := memo.ParseHex("#nope")
			So(err, ShouldNotBeNil)
			So(memo.Stats()["hex"].Size, ShouldEqual, 0)
		})

		Convey("Conversions agree with the pure functions", func() {
			c := RGB{R: 12, G: 200, B: 77}
			So(memo.ANSI256(c), ShouldEqual, ANSI256(c))
			So(memo.ToHSL(c), ShouldResemble, RGBToHSL(c))

			// Second round served from cache, same results.
			So(memo.ANSI256(c), ShouldEqual, ANSI256(c))
			So(memo.ToHSL(c), ShouldResemble, RGBToHSL(c))
			So(memo.Stats()["ansi"].Hits, ShouldEqual, 1)
			So(memo.Stats()["hsl"].Hits, ShouldEqual, 1)
		})

		Convey("Clear resets every concern", func() {
			memo.ANSI256(RGB{R: 1})
			memo.Clear()

			for _, stats := range memo.Stats() {
				So(stats.Size, ShouldEqual, 0)
				So(stats.Hits, ShouldEqual, 0)
				So(stats.Misses, ShouldEqual, 0)
			}
		})
	})
}
