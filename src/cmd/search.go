package cmd

import (
	"context"
	"strings"

	"github.com/misectl/misectl/src/internal/mise"
	"github.com/misectl/misectl/src/internal/tui"
	"github.com/misectl/misectl/src/internal/ui"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the mise registry",
	Long: `Search the mise registry by name. Results are enriched with the homepage
and backends from the registry listing.

Without a query a few recommended tools are shown.

Examples:
  misectl search ripgrep
  misectl search cargo:ubi`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return searchRegistry(cmd.Context(), strings.Join(args, " "))
	},
}

func searchRegistry(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		return showRecommended(ctx)
	}

	var entries []mise.RegistryEntry
	err := withStatus("Searching for "+query, func() error {
		var err error
		entries, err = client.SearchWithDetails(ctx, query, registrySource)
		return err
	})
	if err != nil {
		return err
	}

	return render(entries, func() {
		if len(entries) == 0 {
			ui.Info("No registry entries matched %q", query)
			return
		}
		printTable(registryTable("Search Results", entries))
	})
}

func showRecommended(ctx context.Context) error {
	entries, err := registrySource.ListRegistry(ctx)
	if err != nil {
		ui.Debug("registry unavailable for recommendations: %v", err)
		entries = nil
	}

	recommended := mise.RecommendedTools(entries)
	return render(recommended, func() {
		printTable(registryTable("Recommended Tools", recommended))
		ui.Info("Run %s to search the registry", ui.Highlight("misectl search <query>"))
	})
}

func registryTable(title string, entries []mise.RegistryEntry) string {
	table := tui.NewTable("Tool", "Description", "Backend", "Homepage")
	table.SetTitle(title)

	for _, entry := range entries {
		table.AddRow(entry.Name, entry.Description, entry.Identifier, entry.URL)
	}

	return table.Render()
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
