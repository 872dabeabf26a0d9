package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/prism-cli/prism/color"
	"github.com/prism-cli/prism/recent"
	"github.com/prism-cli/prism/theme"
)

// harmonies maps scheme names to their generators over the base color.
var harmonies = map[string]func(color.HSL, int) []color.HSL{
	"complement": func(c color.HSL, _ int) []color.HSL {
		return []color.HSL{c, color.Complement(c)}
	},
	"triadic": func(c color.HSL, _ int) []color.HSL {
		return color.Triadic(c)
	},
	"split": func(c color.HSL, _ int) []color.HSL {
		return color.SplitComplementary(c)
	},
	"analogous": func(c color.HSL, count int) []color.HSL {
		return color.Analogous(c, count)
	},
	"monochromatic": func(c color.HSL, count int) []color.HSL {
		return color.Monochromatic(c, count)
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().StringP("harmony", "H", "", "Harmony scheme; prompts interactively when omitted")
	lo.Must0(paletteCmd.RegisterFlagCompletionFunc("harmony", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Keys(harmonies), cobra.ShellCompDirectiveNoFileComp
	}))

	paletteCmd.Flags().IntP("count", "n", 5, "Number of colors for analogous and monochromatic schemes")
	paletteCmd.Flags().String("blend", "", "Blend the base color toward this color instead of a harmony")
	paletteCmd.Flags().Float64("ratio", 0.5, "Blend ratio, 0 (base) to 1 (target)")
	paletteCmd.Flags().BoolP("contrast", "c", false, "Show the WCAG contrast ratio of each color against black and white")

	paletteCmd.SetOut(os.Stdout)
}

// paletteCmd generates harmony palettes from a base color.
var paletteCmd = &cobra.Command{
	Use:               "palette [color]",
	Short:             "Generate a harmony palette from a base color",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionColors,
	Example: `  prism palette tomato -H triadic
  prism palette "#3498db" -H monochromatic -n 7
  prism palette gold --blend crimson --ratio 0.3`,
	Run: func(cmd *cobra.Command, args []string) {
		base, err := parseColor(args[0])
		handleErr(err)
		_ = recent.Remember(args[0], 1)

		baseHSL := memo.ToHSL(base)

		if target := lo.Must(cmd.Flags().GetString("blend")); target != "" {
			targetColor, err := parseColor(target)
			handleErr(err)

			ratio := lo.Must(cmd.Flags().GetFloat64("ratio"))
			blended := color.Blend(baseHSL, memo.ToHSL(targetColor), ratio)
			printSwatches(cmd, []color.HSL{baseHSL, blended, memo.ToHSL(targetColor)}, false)
			return
		}

		harmony := lo.Must(cmd.Flags().GetString("harmony"))
		if harmony == "" {
			prompt := survey.Select{
				Message: "Harmony scheme:",
				Options: lo.Keys(harmonies),
			}
			handleErr(survey.AskOne(&prompt, &harmony))
		}

		generate, ok := harmonies[harmony]
		if !ok {
			handleErr(fmt.Errorf("unknown harmony %q, expected one of %v", harmony, lo.Keys(harmonies)))
		}

		palette := generate(baseHSL, lo.Must(cmd.Flags().GetInt("count")))
		printSwatches(cmd, palette, lo.Must(cmd.Flags().GetBool("contrast")))
	},
}

func printSwatches(cmd *cobra.Command, palette []color.HSL, withContrast bool) {
	var (
		black = color.HSL{H: 0, S: 0, L: 0}
		white = color.HSL{H: 0, S: 0, L: 100}
	)

	for _, entry := range palette {
		c := color.HSLToRGB(entry)
		line := fmt.Sprintf(
			"%s %s  hsl(%d, %d%%, %d%%)",
			baseStyle().Foreground(c).Apply("▇▇▇"),
			c.Hex(),
			entry.H, entry.S, entry.L,
		)

		if withContrast {
			line += theme.Faint(fmt.Sprintf(
				"  on black %.2f, on white %.2f",
				color.ContrastRatio(entry, black),
				color.ContrastRatio(entry, white),
			))
		}

		cmd.Println(line)
	}
}
