package cmd

import (
	"context"

	"github.com/misectl/misectl/src/internal/mise"
	"github.com/misectl/misectl/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	registryRefresh bool
	registryFilter  string
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "List the full mise registry",
	Long: `List every tool in the mise registry. The listing is cached for a day
(see registry_cache_ttl in config.yaml); use --refresh to fetch it again.

Examples:
  misectl registry --filter python
  misectl registry --refresh -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showRegistry(cmd.Context(), registryFilter, registryRefresh)
	},
}

// loadRegistry lists the registry, bypassing the cache when refresh is set
func loadRegistry(ctx context.Context, refresh bool) ([]mise.RegistryEntry, error) {
	if refresh && registryCache != nil {
		return registryCache.ForceRefresh(ctx)
	}
	return registrySource.ListRegistry(ctx)
}

func showRegistry(ctx context.Context, filter string, refresh bool) error {
	var entries []mise.RegistryEntry
	err := withStatus("Loading registry", func() error {
		var err error
		entries, err = loadRegistry(ctx, refresh)
		return err
	})
	if err != nil {
		return err
	}

	entries = mise.FilterRegistry(entries, filter)

	return render(entries, func() {
		if len(entries) == 0 {
			ui.Info("No registry entries matched %q", filter)
			return
		}
		printTable(registryTable("Registry", entries))
		ui.Info("%d tools", len(entries))
	})
}

func init() {
	registryCmd.Flags().BoolVar(&registryRefresh, "refresh", false, "Ignore the cached registry listing")
	registryCmd.Flags().StringVarP(&registryFilter, "filter", "f", "", "Only show entries containing this text")
	rootCmd.AddCommand(registryCmd)
}
