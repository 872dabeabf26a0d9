package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prism-cli/prism/gradient"
	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringSliceP("stops", "s", []string{"red", "blue"}, "Initial gradient color stops")
	lo.Must0(previewCmd.RegisterFlagCompletionFunc("stops", completionColors))
}

// previewCmd launches the interactive gradient preview.
var previewCmd = &cobra.Command{
	Use:   "preview [text]",
	Short: "Interactively preview gradients over sample text",
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.Join(args, " ")
		if text == "" {
			text = "the quick brown fox jumps over the lazy dog"
		}

		stops, err := gradient.ParseStops(lo.Must(cmd.Flags().GetStringSlice("stops")))
		handleErr(err)

		interpolation, err := gradient.ParseInterpolation(viper.GetString(key.GradientInterpolation))
		handleErr(err)

		spin, err := gradient.ParseSpin(viper.GetString(key.GradientSpin))
		handleErr(err)

		options := tui.Options{
			Text:          text,
			Stops:         stops,
			Interpolation: interpolation,
			Spin:          spin,
			Capability:    capability(),
		}
		handleErr(tui.Run(&options))
	},
}
