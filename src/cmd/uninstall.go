package cmd

import (
	"fmt"

	"github.com/misectl/misectl/src/internal/ui"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <tool> <version>",
	Short: "Uninstall a specific tool version",
	Long: `Remove an installed tool version.

Examples:
  misectl uninstall node 18.20.0
  misectl uninstall python 3.10.4 --yes`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, version := args[0], args[1]

		if !confirm("Are you sure you want to uninstall %s@%s?", name, version) {
			ui.Info("Uninstall canceled")
			return nil
		}

		return withSpinner(
			fmt.Sprintf("Removing %s@%s", name, version),
			fmt.Sprintf("%s@%s removed", name, version),
			func() error { return client.UninstallVersion(cmd.Context(), name, version) },
		)
	},
}

func init() {
	uninstallCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(uninstallCmd)
}
