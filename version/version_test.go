package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Orders versions component-wise", func() {
			cases := []struct {
				a, b string
				want int
			}{
				{"1.0.0", "1.0.0", 0},
				{"v1.0.0", "1.0.0", 0},
				{"1.0.1", "1.0.0", 1},
				{"1.1.0", "1.0.9", 1},
				{"2.0.0", "1.9.9", 1},
				{"0.9.0", "1.0.0", -1},
				{"1.2", "1.2.0", 0},
				{"1.2", "1.2.1", -1},
			}

			for _, c := range cases {
				got, err := Compare(c.a, c.b)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, c.want)
			}
		})

		Convey("Rejects malformed input", func() {
			_, err := Compare("banana", "1.0.0")
			So(err, ShouldNotBeNil)

			_, err = Compare("1.0.0", "1")
			So(err, ShouldNotBeNil)
		})
	})
}
