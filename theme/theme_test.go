package theme

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/prism-cli/prism/style"
	"github.com/prism-cli/prism/terminal"
)

func TestSemanticHelpers(t *testing.T) {
	Convey("Given a bound capability", t, func() {
		Init(terminal.Capability{Level: style.LevelBasic})

		Convey("Helpers emit basic codes", func() {
			So(Success("ok"), ShouldEqual, "\x1b[32mok\x1b[39m")
			So(Fail("no"), ShouldEqual, "\x1b[31mno\x1b[39m")
			So(Title("head"), ShouldEqual, "\x1b[1m\x1b[35mhead\x1b[39m\x1b[22m")
		})

		Convey("Without capability output stays plain", func() {
			Init(terminal.Capability{Level: style.LevelNone})
			So(Success("ok"), ShouldEqual, "ok")
			So(Bold("ok"), ShouldEqual, "ok")
		})

		Convey("Force keeps output styled", func() {
			Init(terminal.Capability{Level: style.LevelNone, Force: true})
			So(Warning("hm"), ShouldEqual, "\x1b[33mhm\x1b[39m")
		})
	})
}
