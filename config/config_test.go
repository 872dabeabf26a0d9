package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/prism-cli/prism/filesystem"
	"github.com/prism-cli/prism/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Initializes without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Populates every registered default", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer converts dots to underscores", func() {
			So(EnvKeyReplacer.Replace("gradient.interpolation"), ShouldEqual, "gradient_interpolation")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		So(Setup(), ShouldBeNil)
		field := Default[key.GradientInterpolation]

		Convey("Env derives the prefixed variable name", func() {
			So(field.Env(), ShouldEqual, "PRISM_GRADIENT_INTERPOLATION")
		})

		Convey("Pretty renders without panicking", func() {
			So(field.Pretty(), ShouldContainSubstring, "gradient.interpolation")
		})

		Convey("MarshalJSON includes current and default values", func() {
			raw, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(raw), ShouldContainSubstring, `"default":"linear"`)
			So(string(raw), ShouldContainSubstring, `"type":"string"`)
		})
	})
}
