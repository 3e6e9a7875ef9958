package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/misectl/misectl/src/internal/mise"
	"github.com/misectl/misectl/src/internal/tui"
	"github.com/misectl/misectl/src/internal/ui"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var upgradeAll bool

// progressOut receives the upgrade progress bar
var progressOut io.Writer = os.Stderr

var outdatedCmd = &cobra.Command{
	Use:   "outdated",
	Short: "List tools with newer versions available",
	Long: `List installed tools whose latest version is newer than the one installed.

Examples:
  misectl outdated
  misectl outdated --upgrade-all`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var tools []mise.OutdatedTool
		err := withStatus("Checking for outdated tools", func() error {
			var err error
			tools, err = client.ListOutdatedTools(cmd.Context())
			return err
		})
		if err != nil {
			return err
		}

		if upgradeAll {
			return upgradeOutdated(cmd.Context(), tools)
		}

		return render(tools, func() {
			if len(tools) == 0 {
				ui.Success("All tools are up to date")
				return
			}
			printTable(outdatedTable(tools))
		})
	},
}

func outdatedTable(tools []mise.OutdatedTool) string {
	table := tui.NewTable("Tool", "Current", "Latest", "Requested", "Source")
	table.SetTitle("Outdated Tools")

	for _, tool := range tools {
		table.AddRow(
			tui.RenderTool(tool.Name),
			tool.CurrentVersion,
			tui.RenderVersion(tool.LatestVersion),
			tool.RequestedVersion,
			tool.SourcePath,
		)
	}

	return table.Render()
}

// upgradeOutdated upgrades each tool in turn. A failed upgrade is reported
// and does not stop the rest.
func upgradeOutdated(ctx context.Context, tools []mise.OutdatedTool) error {
	if len(tools) == 0 {
		ui.Success("All tools are up to date")
		return nil
	}

	bar := progressbar.NewOptions(len(tools),
		progressbar.OptionSetWriter(progressOut),
		progressbar.OptionSetDescription("Upgrading"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	var failed []string
	for _, tool := range tools {
		bar.Describe(fmt.Sprintf("Upgrading %s", tool.Name))
		if err := client.UpgradeTool(ctx, tool.Name); err != nil {
			ui.Debug("upgrade %s failed: %v", tool.Name, err)
			failed = append(failed, fmt.Sprintf("%s: %s", tool.Name, mise.FormatError(err)))
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	upgraded := len(tools) - len(failed)
	if upgraded > 0 {
		ui.Success("Upgraded %d of %d tools", upgraded, len(tools))
	}
	for _, failure := range failed {
		ui.Error("%s", failure)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d upgrades failed", len(failed), len(tools))
	}
	return nil
}

func init() {
	outdatedCmd.Flags().BoolVar(&upgradeAll, "upgrade-all", false, "Upgrade every outdated tool")
	rootCmd.AddCommand(outdatedCmd)
}
