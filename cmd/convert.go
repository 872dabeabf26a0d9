package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/prism-cli/prism/recent"
	"github.com/prism-cli/prism/theme"
)

// conversion is the structured output of the convert command.
type conversion struct {
	Input   string `json:"input" jsonschema:"description=The color input exactly as given."`
	Hex     string `json:"hex" jsonschema:"description=Canonical lowercase hex representation."`
	Rgb     [3]int `json:"rgb" jsonschema:"description=Red, green and blue channels, 0-255."`
	Hsl     [3]int `json:"hsl" jsonschema:"description=Hue in degrees and saturation/lightness in percent."`
	Ansi256 int    `json:"ansi256" jsonschema:"description=Nearest xterm 256-color palette index."`
	Int     int    `json:"int" jsonschema:"description=The color packed as a 24-bit integer."`
}

func convert(input string) (conversion, error) {
	c, err := parseColor(input)
	if err != nil {
		return conversion{}, err
	}

	hsl := memo.ToHSL(c)
	return conversion{
		Input:   input,
		Hex:     c.Hex(),
		Rgb:     [3]int{int(c.R), int(c.G), int(c.B)},
		Hsl:     [3]int{hsl.H, hsl.S, hsl.L},
		Ansi256: int(memo.ANSI256(c)),
		Int:     c.Int(),
	}, nil
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("to", "t", "", "Output a single representation: hex, rgb, hsl, ansi256 or int")
	lo.Must0(convertCmd.RegisterFlagCompletionFunc("to", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"hex", "rgb", "hsl", "ansi256", "int"}, cobra.ShellCompDirectiveNoFileComp
	}))

	convertCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")

	convertCmd.SetOut(os.Stdout)
}

// convertCmd converts colors between representations.
var convertCmd = &cobra.Command{
	Use:               "convert [color]...",
	Short:             "Convert colors between hex, rgb, hsl, ansi256 and int",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionColors,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			to     = lo.Must(cmd.Flags().GetString("to"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
		)

		conversions := make([]conversion, 0, len(args))
		for _, arg := range args {
			result, err := convert(arg)
			handleErr(err)
			conversions = append(conversions, result)
			_ = recent.Remember(arg, 1)
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(conversions))
			return
		}

		for i, result := range conversions {
			if to != "" {
				cmd.Println(single(result, to))
				continue
			}

			swatch := baseStyle().Foreground(lo.Must(parseColor(result.Input))).Apply("▇▇▇")
			cmd.Printf("%s %s\n", swatch, theme.Bold(result.Input))
			cmd.Printf("  %s     %s\n", theme.Faint("hex"), result.Hex)
			cmd.Printf("  %s     rgb(%d, %d, %d)\n", theme.Faint("rgb"), result.Rgb[0], result.Rgb[1], result.Rgb[2])
			cmd.Printf("  %s     hsl(%d, %d%%, %d%%)\n", theme.Faint("hsl"), result.Hsl[0], result.Hsl[1], result.Hsl[2])
			cmd.Printf("  %s %d\n", theme.Faint("ansi256"), result.Ansi256)
			cmd.Printf("  %s     %d\n", theme.Faint("int"), result.Int)

			if i < len(conversions)-1 {
				cmd.Println()
			}
		}
	},
}

func single(result conversion, to string) string {
	switch to {
	case "hex":
		return result.Hex
	case "rgb":
		return fmt.Sprintf("rgb(%d, %d, %d)", result.Rgb[0], result.Rgb[1], result.Rgb[2])
	case "hsl":
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", result.Hsl[0], result.Hsl[1], result.Hsl[2])
	case "ansi256":
		return fmt.Sprint(result.Ansi256)
	case "int":
		return fmt.Sprint(result.Int)
	default:
		handleErr(fmt.Errorf("unknown representation %q, expected hex, rgb, hsl, ansi256 or int", to))
		return ""
	}
}
