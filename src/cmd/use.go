package cmd

import (
	"fmt"

	"github.com/misectl/misectl/src/internal/mise"
	"github.com/spf13/cobra"
)

var (
	useGlobal bool
	usePath   string
	unusePath string
)

var useCmd = &cobra.Command{
	Use:   "use <tool> <version>",
	Short: "Set the version of a tool for a project or globally",
	Long: `Record a tool version in the project config (or the global config with
--global), installing it if needed.

Examples:
  misectl use node 20.11.1
  misectl use python 3.12 --global
  misectl use go 1.22 --path ~/src/api`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, version := args[0], args[1]
		scope := "for this project"
		if useGlobal {
			scope = "globally"
		} else if usePath != "" {
			scope = "in " + usePath
		}

		return withSpinner(
			fmt.Sprintf("Setting %s@%s", name, version),
			fmt.Sprintf("Using %s@%s %s", name, version, scope),
			func() error {
				return client.SetToolVersion(cmd.Context(), name, version, mise.UseOptions{Global: useGlobal, Path: usePath})
			},
		)
	},
}

var unuseCmd = &cobra.Command{
	Use:   "unuse <tool>",
	Short: "Remove a tool from a config file",
	Long: `Remove a tool from the project config, or from the config file at --path.
Installed versions are kept.

Examples:
  misectl unuse node
  misectl unuse node --path ~/.config/mise/config.toml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		return withSpinner("Removing "+name+" from config", "Removed "+name+" from config", func() error {
			return client.UnuseTool(cmd.Context(), name, unusePath)
		})
	},
}

func init() {
	useCmd.Flags().BoolVarP(&useGlobal, "global", "g", false, "Set the version in the global config")
	useCmd.Flags().StringVar(&usePath, "path", "", "Project directory to run in")
	unuseCmd.Flags().StringVar(&unusePath, "path", "", "Config file or directory to remove the tool from")
	rootCmd.AddCommand(useCmd, unuseCmd)
}
