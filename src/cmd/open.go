package cmd

import (
	"context"
	"fmt"

	"github.com/misectl/misectl/src/internal/mise"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <tool>",
	Short: "Open a tool's homepage",
	Long: `Open the homepage of a registry tool in your browser. The homepage is
derived from the tool's backends (GitHub, crates.io, npm, PyPI, ...).

Example:
  misectl open ripgrep`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := toolHomepage(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		openOrPrint(url)
		return nil
	},
}

// toolHomepage finds the registry entry for name and returns its homepage
func toolHomepage(ctx context.Context, name string) (string, error) {
	entries, err := registrySource.ListRegistry(ctx)
	if err != nil {
		return "", err
	}

	entry, ok := mise.FindRegistryEntry(entries, name)
	if !ok {
		return "", fmt.Errorf("%s is not in the mise registry", name)
	}
	if entry.URL == "" {
		return "", fmt.Errorf("no homepage known for %s (backends: %v)", name, entry.Backends)
	}
	return entry.URL, nil
}

func init() {
	rootCmd.AddCommand(openCmd)
}
