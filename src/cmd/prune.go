package cmd

import (
	"github.com/misectl/misectl/src/internal/mise"
	"github.com/misectl/misectl/src/internal/ui"
	"github.com/spf13/cobra"
)

var pruneDryRun bool

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove tool versions no config file uses",
	Long: `Delete installed versions that are not referenced by any tracked config.

Examples:
  misectl prune --dry-run
  misectl prune`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		message := "Pruning unused tool versions"
		if pruneDryRun {
			message = "Checking what prune would remove"
		}

		var result *mise.Result
		err := withSpinner(message, "Prune complete", func() error {
			var err error
			result, err = client.Prune(cmd.Context(), pruneDryRun)
			return err
		})
		if err != nil {
			return err
		}

		summary := mise.SummarizePrune(result.Stdout)
		return render(map[string]interface{}{"dry_run": pruneDryRun, "summary": summary}, func() {
			ui.Info("%s", summary)
		})
	},
}

func init() {
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "Only show what would be removed")
	rootCmd.AddCommand(pruneCmd)
}
