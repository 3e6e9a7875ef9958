package cmd

import (
	"context"
	"strings"

	"github.com/misectl/misectl/src/internal/mise"
	"github.com/misectl/misectl/src/internal/tui"
	"github.com/misectl/misectl/src/internal/ui"
	"github.com/spf13/cobra"
)

var installedFilter string

var installedCmd = &cobra.Command{
	Use:     "installed",
	Aliases: []string{"ls", "list"},
	Short:   "List installed tools and versions",
	Long: `List every tool mise has installed, with the active version first.

Filters:
  all        every installed version (default)
  active     only active versions
  global     versions set in the global config.toml
  local      versions set by a project config file
  multiple   tools with more than one installed version
  unused     versions that are neither active nor requested

Examples:
  misectl installed
  misectl installed --filter multiple
  misectl installed -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := mise.ParseInstalledFilter(installedFilter)
		if err != nil {
			return err
		}
		return showInstalled(cmd.Context(), filter)
	},
}

func showInstalled(ctx context.Context, filter mise.InstalledFilter) error {
	var tools []mise.InstalledTool
	err := withStatus("Loading installed tools", func() error {
		var err error
		tools, err = client.ListInstalledTools(ctx)
		return err
	})
	if err != nil {
		return err
	}

	tools = mise.FilterInstalledTools(tools, filter)

	return render(tools, func() {
		if len(tools) == 0 {
			ui.Info("No tools installed")
			return
		}
		printTable(installedTable(tools))
	})
}

func installedTable(tools []mise.InstalledTool) string {
	table := tui.NewTable("Tool", "Version", "Scope", "Source", "")
	table.SetTitle("Installed Tools")

	for _, tool := range tools {
		for i, v := range tool.Versions {
			name := ""
			if i == 0 {
				name = tui.RenderTool(tool.Name)
			}

			var notes []string
			if tag := v.Tag(); tag != "" {
				notes = append(notes, tui.RenderTag(tag))
			}
			if !v.Installed {
				notes = append(notes, tui.RenderMuted("missing"))
			}

			if v.Active {
				table.AddActiveRow(name, tui.GetCheckMark()+" "+v.Version, v.ConfigScope(), v.SourcePath, strings.Join(notes, " "))
			} else {
				table.AddRow(name, "  "+v.Version, v.ConfigScope(), v.SourcePath, strings.Join(notes, " "))
			}
		}
	}

	return table.Render()
}

func init() {
	installedCmd.Flags().StringVarP(&installedFilter, "filter", "f", "", "Filter: all, active, global, local, multiple, unused")
	rootCmd.AddCommand(installedCmd)
}
