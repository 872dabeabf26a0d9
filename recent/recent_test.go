package recent

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"

	"github.com/prism-cli/prism/filesystem"
	"github.com/prism-cli/prism/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.RecentSaveOnUse, true)
	viper.Set(key.RecentShowSuggestions, true)
}

func TestRecent(t *testing.T) {
	Convey("Given recent color history", t, func() {
		So(Remember("Crimson", 1), ShouldBeNil)
		So(Remember("coral", 10), ShouldBeNil)

		Convey("Suggestions come back sorted by rank", func() {
			suggestions := SuggestMany("c")
			So(len(suggestions), ShouldBeGreaterThanOrEqualTo, 2)
			So(suggestions[0], ShouldEqual, "coral")
		})

		Convey("Suggest returns the top match", func() {
			So(Suggest("cor").MustGet(), ShouldEqual, "coral")
		})

		Convey("No match yields none", func() {
			So(Suggest("zzz").IsPresent(), ShouldBeFalse)
		})

		Convey("Input is sanitized before storage", func() {
			suggestions := SuggestMany("crimson")
			So(suggestions, ShouldContain, "crimson")
		})

		Convey("Remembering again raises the rank", func() {
			So(Remember("crimson", 100), ShouldBeNil)
			So(SuggestMany("c")[0], ShouldEqual, "crimson")
		})

		Convey("Suggestions can be disabled", func() {
			viper.Set(key.RecentShowSuggestions, false)
			So(SuggestMany("c"), ShouldBeEmpty)
			viper.Set(key.RecentShowSuggestions, true)
		})

		Convey("Saving can be disabled", func() {
			viper.Set(key.RecentSaveOnUse, false)
			So(Remember("teal", 1), ShouldBeNil)
			So(SuggestMany("teal"), ShouldBeEmpty)
			viper.Set(key.RecentSaveOnUse, true)
		})
	})
}
