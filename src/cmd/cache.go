package cmd

import (
	"github.com/misectl/misectl/src/internal/ui"
	"github.com/spf13/cobra"
)

var cacheCleanRegistry bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clean the mise cache",
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the mise cache directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := client.CachePath(cmd.Context())
		if err != nil {
			return err
		}
		return showCachePaths(path)
	},
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the mise cache",
	Long: `Delete the mise cache. With --registry the registry listing cached by
misectl is removed too.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := withSpinner("Cleaning mise cache", "Cache cleaned", func() error {
			return client.CleanCache(cmd.Context())
		})
		if err != nil {
			return err
		}

		if cacheCleanRegistry && registryCache != nil {
			if err := registryCache.ClearCache(); err != nil {
				return err
			}
			ui.Success("Registry cache removed")
		}
		return nil
	},
}

var cacheOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the mise cache directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := client.CachePath(cmd.Context())
		if err != nil {
			return err
		}
		openOrPrint(path)
		return nil
	},
}

// showCachePaths prints the mise cache directory and, when enabled, the
// registry cache file kept by misectl
func showCachePaths(path string) error {
	paths := map[string]string{"path": path}
	if registryCache != nil {
		paths["registry_cache"] = registryCache.Path()
	}

	return render(paths, func() {
		printTable(path)
		if registryCache != nil {
			ui.Info("Registry listing cached at %s", registryCache.Path())
		}
	})
}

func init() {
	cacheCleanCmd.Flags().BoolVar(&cacheCleanRegistry, "registry", false, "Also remove the cached registry listing")
	cacheCmd.AddCommand(cachePathCmd, cacheCleanCmd, cacheOpenCmd)
	rootCmd.AddCommand(cacheCmd)
}
