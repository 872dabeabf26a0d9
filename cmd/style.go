package cmd

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/prism-cli/prism/recent"
	"github.com/prism-cli/prism/style"
)

// styleAttributes maps flag names to the style mutators they enable.
var styleAttributes = []struct {
	flag  string
	short string
	apply func(style.Style) style.Style
}{
	{"bold", "b", style.Style.Bold},
	{"dim", "d", style.Style.Dim},
	{"italic", "i", style.Style.Italic},
	{"underline", "u", style.Style.Underline},
	{"inverse", "r", style.Style.Inverse},
	{"hidden", "", style.Style.Hidden},
	{"strikethrough", "x", style.Style.Strikethrough},
}

func init() {
	rootCmd.AddCommand(styleCmd)

	styleCmd.Flags().StringP("foreground", "f", "", "Foreground color: name, hex, rgb(...) or hsl(...)")
	styleCmd.Flags().StringP("background", "g", "", "Background color: name, hex, rgb(...) or hsl(...)")
	styleCmd.Flags().StringSlice("sgr", []string{}, "Raw SGR parameters to append (e.g. 38;5;215)")

	for _, attribute := range styleAttributes {
		if attribute.short != "" {
			styleCmd.Flags().BoolP(attribute.flag, attribute.short, false, "Apply "+attribute.flag)
		} else {
			styleCmd.Flags().Bool(attribute.flag, false, "Apply "+attribute.flag)
		}
	}

	for _, flag := range []string{"foreground", "background"} {
		lo.Must0(styleCmd.RegisterFlagCompletionFunc(flag, completionColors))
	}

	styleCmd.SetOut(os.Stdout)
}

// completionColors suggests recently used colors first, then named colors.
func completionColors(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	suggestions := recent.SuggestMany(toComplete)
	if len(suggestions) == 0 {
		suggestions = colorNamesForCompletion(toComplete)
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

// styleCmd wraps text in composed SGR escape sequences.
var styleCmd = &cobra.Command{
	Use:   "style [text]",
	Short: "Apply colors and attributes to text",
	Long: `Apply colors and attributes to text and print the result.

Text is read from the arguments, or from stdin when none are given.
Colors accept CSS names, hex strings, rgb(r,g,b) and hsl(h,s%,l%) forms.`,
	Example: `  prism style -f tomato -b "#222" --bold "hello"
  echo hello | prism style -f "rgb(255,128,64)" -u`,
	Run: func(cmd *cobra.Command, args []string) {
		text, err := textFromArgsOrStdin(args)
		handleErr(err)

		s := baseStyle()

		for _, attribute := range styleAttributes {
			if lo.Must(cmd.Flags().GetBool(attribute.flag)) {
				s = attribute.apply(s)
			}
		}

		if foreground := lo.Must(cmd.Flags().GetString("foreground")); foreground != "" {
			c, err := parseColor(foreground)
			handleErr(err)
			s = s.Foreground(c)
			_ = recent.Remember(foreground, 1)
		}

		if background := lo.Must(cmd.Flags().GetString("background")); background != "" {
			c, err := parseColor(background)
			handleErr(err)
			s = s.Background(c)
			_ = recent.Remember(background, 1)
		}

		for _, raw := range lo.Must(cmd.Flags().GetStringSlice("sgr")) {
			s, err = s.AddSGR(raw)
			handleErr(err)
		}

		cmd.Println(s.Apply(text))
	},
}

// textFromArgsOrStdin joins arguments into the text to render, reading stdin
// when no arguments are present.
func textFromArgsOrStdin(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	stat, err := os.Stdin.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		return "", errors.New("no text given and nothing piped on stdin")
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}
