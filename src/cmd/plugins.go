package cmd

import (
	"github.com/misectl/misectl/src/internal/tui"
	"github.com/misectl/misectl/src/internal/ui"
	"github.com/spf13/cobra"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "Manage mise plugins",
}

var pluginsListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List installed plugins",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plugins, err := client.ListPlugins(cmd.Context())
		if err != nil {
			return err
		}

		return render(plugins, func() {
			if len(plugins) == 0 {
				ui.Info("No plugins installed")
				return
			}
			table := tui.NewTable("Plugin", "URL")
			table.SetTitle("Installed Plugins")
			for _, plugin := range plugins {
				table.AddRow(tui.RenderTool(plugin.Name), plugin.URL)
			}
			printTable(table.Render())
		})
	},
}

var pluginsInstallCmd = &cobra.Command{
	Use:   "install <name> [git-url]",
	Short: "Install a plugin",
	Long: `Install a plugin by name, or from a git URL.

Examples:
  misectl plugins install poetry
  misectl plugins install node https://github.com/asdf-vm/asdf-nodejs.git`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		url := ""
		if len(args) == 2 {
			url = args[1]
		}
		return withSpinner("Installing plugin "+name, "Installed plugin "+name, func() error {
			return client.InstallPlugin(cmd.Context(), name, url)
		})
	},
}

var pluginsUninstallCmd = &cobra.Command{
	Use:     "uninstall <name>",
	Aliases: []string{"rm", "remove"},
	Short:   "Uninstall a plugin",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !confirm("Uninstall plugin %s?", name) {
			ui.Info("Cancelled")
			return nil
		}
		return withSpinner("Removing plugin "+name, "Removed plugin "+name, func() error {
			return client.UninstallPlugin(cmd.Context(), name)
		})
	},
}

var pluginsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update all plugins",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSpinner("Updating plugins", "Plugins updated", func() error {
			return client.UpdatePlugins(cmd.Context())
		})
	},
}

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List the backends mise supports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backends, err := client.ListBackends(cmd.Context())
		if err != nil {
			return err
		}

		return render(backends, func() {
			table := tui.NewTable("Backend")
			table.SetTitle("Backends")
			for _, backend := range backends {
				table.AddRow(backend)
			}
			printTable(table.Render())
			ui.Info("Install from a backend with %s", ui.Highlight("misectl install <tool> --backend <backend>"))
		})
	},
}

func init() {
	pluginsUninstallCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")

	pluginsCmd.AddCommand(pluginsListCmd, pluginsInstallCmd, pluginsUninstallCmd, pluginsUpdateCmd)
	rootCmd.AddCommand(pluginsCmd, backendsCmd)
}
