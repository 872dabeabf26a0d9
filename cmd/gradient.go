package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prism-cli/prism/gradient"
	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/recent"
)

func init() {
	rootCmd.AddCommand(gradientCmd)

	gradientCmd.Flags().StringSliceP("stops", "s", []string{}, "Ordered gradient color stops")
	lo.Must0(gradientCmd.MarkFlagRequired("stops"))
	lo.Must0(gradientCmd.RegisterFlagCompletionFunc("stops", completionColors))

	gradientCmd.Flags().StringP("interpolation", "i", "", "Interpolation mode: linear or hsv")
	lo.Must0(gradientCmd.RegisterFlagCompletionFunc("interpolation", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"linear", "hsv"}, cobra.ShellCompDirectiveNoFileComp
	}))

	gradientCmd.Flags().String("spin", "", "Hue arc direction for hsv interpolation: short or long")
	lo.Must0(gradientCmd.RegisterFlagCompletionFunc("spin", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"short", "long"}, cobra.ShellCompDirectiveNoFileComp
	}))

	gradientCmd.SetOut(os.Stdout)
}

// gradientCmd renders text with a per-character color gradient.
var gradientCmd = &cobra.Command{
	Use:   "gradient [text]",
	Short: "Render text with a per-character color gradient",
	Long: `Render text with a per-character color gradient between ordered stops.

Text is read from the arguments, or from stdin when none are given.
Whitespace is left uncolored. Flags fall back to the configured defaults.`,
	Example: `  prism gradient -s red,blue "hello world"
  figlet prism | prism gradient -s "#ff0000,#00ff00,#0000ff" -i hsv --spin long`,
	Run: func(cmd *cobra.Command, args []string) {
		text, err := textFromArgsOrStdin(args)
		handleErr(err)

		inputs := lo.Must(cmd.Flags().GetStringSlice("stops"))
		stops, err := gradient.ParseStops(inputs)
		handleErr(err)

		for _, input := range inputs {
			_ = recent.Remember(input, 1)
		}

		interpolationFlag := lo.Must(cmd.Flags().GetString("interpolation"))
		if interpolationFlag == "" {
			interpolationFlag = viper.GetString(key.GradientInterpolation)
		}
		interpolation, err := gradient.ParseInterpolation(interpolationFlag)
		handleErr(err)

		spinFlag := lo.Must(cmd.Flags().GetString("spin"))
		if spinFlag == "" {
			spinFlag = viper.GetString(key.GradientSpin)
		}
		spin, err := gradient.ParseSpin(spinFlag)
		handleErr(err)

		session := capability()
		rendered, err := renderer.Render(text, stops, gradient.Options{
			Interpolation: interpolation,
			Spin:          spin,
			Level:         session.Level,
			Force:         session.Force,
		})
		handleErr(err)

		cmd.Println(rendered)
	},
}
