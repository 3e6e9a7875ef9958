package cmd

import (
	"context"

	"github.com/misectl/misectl/src/internal/tui"
	"github.com/misectl/misectl/src/internal/ui"
	"github.com/spf13/cobra"
)

var versionsLimit int

var versionsCmd = &cobra.Command{
	Use:   "versions <tool>",
	Short: "List versions available to install",
	Long: `List the versions of a tool that mise can install, newest first.
Installed versions are marked.

Examples:
  misectl versions node
  misectl versions python --limit 0   # show all`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showVersions(cmd.Context(), args[0], versionsLimit)
	},
}

func showVersions(ctx context.Context, name string, limit int) error {
	var versions []string
	err := withStatus("Fetching versions of "+name, func() error {
		var err error
		versions, err = client.ListAllVersions(ctx, name)
		return err
	})
	if err != nil {
		return err
	}

	total := len(versions)
	if limit > 0 && len(versions) > limit {
		versions = versions[:limit]
	}

	return render(versions, func() {
		if total == 0 {
			ui.Info("No versions available for %s", name)
			return
		}

		installed := installedVersions(ctx, name)

		table := tui.NewTable("Version", "")
		table.SetTitle(name + " versions")
		for _, v := range versions {
			if installed[v] {
				table.AddActiveRow(v, tui.GetCheckMark()+" installed")
			} else {
				table.AddRow(v, "")
			}
		}
		printTable(table.Render())

		if len(versions) < total {
			ui.Info("Showing %d of %d versions (use --limit 0 for all)", len(versions), total)
		}
	})
}

// installedVersions returns the installed versions of name; failures yield none
func installedVersions(ctx context.Context, name string) map[string]bool {
	result := make(map[string]bool)

	tools, err := client.ListInstalledTools(ctx)
	if err != nil {
		ui.Debug("could not list installed tools: %v", err)
		return result
	}

	for _, tool := range tools {
		if tool.Name != name {
			continue
		}
		for _, v := range tool.Versions {
			if v.Installed {
				result[v.Version] = true
			}
		}
	}
	return result
}

func init() {
	versionsCmd.Flags().IntVarP(&versionsLimit, "limit", "n", 25, "Maximum versions to show (0 for all)")
	rootCmd.AddCommand(versionsCmd)
}
