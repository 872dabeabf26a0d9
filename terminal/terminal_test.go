package terminal

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/spf13/viper"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/style"
)

func TestLevelFromProfile(t *testing.T) {
	Convey("Profiles map to capability tiers", t, func() {
		So(LevelFromProfile(termenv.TrueColor), ShouldEqual, style.LevelTrueColor)
		So(LevelFromProfile(termenv.ANSI256), ShouldEqual, style.Level256)
		So(LevelFromProfile(termenv.ANSI), ShouldEqual, style.LevelBasic)
		So(LevelFromProfile(termenv.Ascii), ShouldEqual, style.LevelNone)
	})
}

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		viper.Set(key.ColorLevel, "auto")
		viper.Set(key.ColorForce, false)
		t.Setenv("NO_COLOR", "")
		t.Setenv("CLICOLOR_FORCE", "")

		Convey("An explicit configured level wins over everything", func() {
			viper.Set(key.ColorLevel, "3")
			So(Resolve().Level, ShouldEqual, style.LevelTrueColor)

			viper.Set(key.ColorLevel, "0")
			So(Resolve().Level, ShouldEqual, style.LevelNone)
		})

		Convey("NO_COLOR disables output", func() {
			t.Setenv("NO_COLOR", "1")
			capability := Resolve()
			So(capability.Level, ShouldEqual, style.LevelNone)
			So(capability.Force, ShouldBeFalse)
		})

		Convey("CLICOLOR_FORCE overrides NO_COLOR", func() {
			t.Setenv("NO_COLOR", "1")
			t.Setenv("CLICOLOR_FORCE", "1")
			So(Resolve().Force, ShouldBeTrue)
		})

		Convey("CLICOLOR_FORCE=0 does not force", func() {
			t.Setenv("CLICOLOR_FORCE", "0")
			So(Resolve().Force, ShouldBeFalse)
		})

		Convey("Configured force flag forces", func() {
			viper.Set(key.ColorForce, true)
			So(Resolve().Force, ShouldBeTrue)
		})

		Convey("A garbage configured level falls back to detection", func() {
			viper.Set(key.ColorLevel, "chartreuse")
			// Stdout is not a terminal under go test.
			So(Resolve().Level, ShouldEqual, style.LevelNone)
		})

		Convey("Without a terminal attached detection yields no color", func() {
			So(Resolve().Level, ShouldEqual, style.LevelNone)
		})
	})
}
