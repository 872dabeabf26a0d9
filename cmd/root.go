// Package cmd implements the command-line interface for prism.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prism-cli/prism/color"
	"github.com/prism-cli/prism/constant"
	"github.com/prism-cli/prism/gradient"
	"github.com/prism-cli/prism/icon"
	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/log"
	"github.com/prism-cli/prism/style"
	"github.com/prism-cli/prism/terminal"
	"github.com/prism-cli/prism/theme"
	"github.com/prism-cli/prism/util"
	"github.com/prism-cli/prism/where"
)

// Shared rendering state, initialized once the configuration is loaded.
var (
	memo     *color.Memo
	renderer *gradient.Renderer
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("color", "C", "auto", "Color capability level: auto or 0..3")
	lo.Must0(viper.BindPFlag(key.ColorLevel, rootCmd.PersistentFlags().Lookup("color")))

	rootCmd.PersistentFlags().BoolP("force-color", "F", false, "Emit escape sequences even when output is piped")
	lo.Must0(viper.BindPFlag(key.ColorForce, rootCmd.PersistentFlags().Lookup("force-color")))

	// Clean up leftover temporary artifacts from previous runs.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the prism application.
var rootCmd = &cobra.Command{
	Use:   constant.Prism,
	Short: "A terminal text styling toolkit: colors, styles and gradients",
	Long: constant.AsciiArtLogo + "\n" +
		"    - A terminal text styling toolkit: colors, styles and gradients",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		theme.Init(terminal.Resolve())

		memo = color.NewMemo(
			viper.GetInt(key.CacheHexCapacity),
			viper.GetInt(key.CacheAnsiCapacity),
			viper.GetInt(key.CacheHslCapacity),
		)
		renderer = gradient.NewRenderer(viper.GetInt(key.CacheGradientCapacity))
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// parseColor resolves a color argument through the memoized hex path when it
// looks like a hex payload, falling back to the general parser.
func parseColor(input string) (color.RGB, error) {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "#") {
		return memo.ParseHex(trimmed)
	}
	return color.Parse(trimmed)
}

// capability returns the session rendering context bound at startup.
func capability() terminal.Capability {
	return theme.Capability()
}

// baseStyle returns an empty style bound to the session capability.
func baseStyle() style.Style {
	return theme.Base()
}
