package cmd

import (
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/prism-cli/prism/config"
	"github.com/prism-cli/prism/constant"
	"github.com/prism-cli/prism/theme"
	"github.com/prism-cli/prism/where"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		exposed := append([]string{}, config.EnvExposed...)
		exposed = append(exposed, where.EnvConfigPath, "NO_COLOR", "CLICOLOR_FORCE")
		slices.Sort(exposed)

		for _, env := range exposed {
			switch env {
			case where.EnvConfigPath, "NO_COLOR", "CLICOLOR_FORCE":
			default:
				env = strings.ToUpper(constant.Prism + "_" + config.EnvKeyReplacer.Replace(env))
			}
			value := os.Getenv(env)
			present := value != ""

			if setOnly || unsetOnly {
				if !present && setOnly {
					continue
				}

				if present && unsetOnly {
					continue
				}
			}

			cmd.Print(theme.Bold(theme.Accent(env)))
			cmd.Print("=")

			if present {
				cmd.Println(theme.Success(value))
			} else {
				cmd.Println(theme.Fail("unset"))
			}
		}
	},
}
