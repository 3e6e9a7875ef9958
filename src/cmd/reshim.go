package cmd

import (
	"github.com/spf13/cobra"
)

var reshimCmd = &cobra.Command{
	Use:   "reshim",
	Short: "Regenerate mise shims",
	Long: `Regenerate the shims mise places on PATH. Run this after installing a tool
outside of mise, e.g. with npm install -g.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSpinner("Regenerating shims", "Shims regenerated", func() error {
			return client.Reshim(cmd.Context())
		})
	},
}

func init() {
	rootCmd.AddCommand(reshimCmd)
}
