package cmd

import (
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/prism-cli/prism/color"
	"github.com/prism-cli/prism/theme"
	"github.com/prism-cli/prism/util"
)

func init() {
	rootCmd.AddCommand(namesCmd)

	namesCmd.Flags().BoolP("swatch", "s", false, "Show a colored swatch and hex value next to each name")
	namesCmd.SetOut(os.Stdout)
}

// colorNamesForCompletion filters the named palette for shell completion.
func colorNamesForCompletion(partial string) []string {
	if partial == "" {
		return color.Names()
	}
	return color.SearchNames(partial)
}

// namesCmd lists and searches the named color palette.
var namesCmd = &cobra.Command{
	Use:   "names [search]",
	Short: "List or fuzzy-search the named color palette",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var names []string
		if len(args) == 1 {
			names = color.SearchNames(args[0])
			if len(names) == 0 {
				cmd.Printf("no names matching %s\n", theme.Warning(args[0]))
				return
			}
		} else {
			names = color.Names()
		}

		if lo.Must(cmd.Flags().GetBool("swatch")) {
			for _, name := range names {
				c := lo.Must(color.Lookup(name))
				cmd.Printf(
					"%s %s %s\n",
					baseStyle().Foreground(c).Apply("▇▇▇"),
					name,
					theme.Faint(c.Hex()),
				)
			}
			cmd.Printf("\n%s\n", theme.Faint(util.Quantify(len(names), "name", "names")))
			return
		}

		width, _, err := util.TerminalSize()
		if err != nil || width <= 0 {
			width = 80
		}

		cmd.Println(wordwrap.String(strings.Join(names, " "), width))
		cmd.Printf("\n%s\n", theme.Faint(util.Quantify(len(names), "name", "names")))
	},
}
