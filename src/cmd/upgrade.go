package cmd

import (
	"fmt"

	"github.com/misectl/misectl/src/internal/ui"
	"github.com/spf13/cobra"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade <tool>",
	Short: "Upgrade a tool to its latest version",
	Long: `Upgrade an installed tool within the version range its config requests.

Example:
  misectl upgrade node`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		ctx := cmd.Context()

		before := currentVersionOf(cmd, name)
		if before != "" {
			ui.Info("Currently: %s", ui.HighlightVersion(before))
		}

		return withSpinner("Upgrading "+name, fmt.Sprintf("Upgraded %s", name), func() error {
			return client.UpgradeTool(ctx, name)
		})
	},
}

var selfUpdateCmd = &cobra.Command{
	Use:   "self-update",
	Short: "Update mise itself",
	Long: `Update the mise binary. Homebrew installs are upgraded with brew; other
installs use mise self-update.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSpinner("Updating mise", "mise is up to date", func() error {
			return client.SelfUpdate(cmd.Context())
		})
	},
}

// currentVersionOf returns the active or newest installed version, or ""
func currentVersionOf(cmd *cobra.Command, name string) string {
	tools, err := client.ListInstalledTools(cmd.Context())
	if err != nil {
		ui.Debug("could not list installed tools: %v", err)
		return ""
	}
	for _, tool := range tools {
		if tool.Name == name {
			return tool.CurrentVersion()
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(upgradeCmd, selfUpdateCmd)
}
