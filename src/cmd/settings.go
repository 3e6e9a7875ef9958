package cmd

import (
	"context"
	"fmt"

	"github.com/misectl/misectl/src/internal/mise"
	"github.com/misectl/misectl/src/internal/tui"
	"github.com/misectl/misectl/src/internal/ui"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change mise settings",
}

var settingsListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List mise settings",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := client.ListSettings(cmd.Context())
		if err != nil {
			return err
		}

		return render(list, func() {
			table := tui.NewTable("Key", "Value", "Source")
			table.SetTitle("mise settings")
			for _, s := range list {
				table.AddRow(s.Key, s.Value, tui.RenderMuted(s.Source))
			}
			printTable(table.Render())
		})
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a mise setting",
	Long: `Change a mise setting in the global config.

Examples:
  misectl settings set experimental true
  misectl settings set jobs 8`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := client.UpdateSetting(cmd.Context(), key, value); err != nil {
			return err
		}
		ui.Success("Set %s = %s", key, value)
		return nil
	},
}

var settingsToggleCmd = &cobra.Command{
	Use:   "toggle <key>",
	Short: "Flip a boolean mise setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		next, err := toggleSetting(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		ui.Success("Set %s = %s", args[0], next)
		return nil
	},
}

// toggleSetting flips a true/false setting and returns the new value
func toggleSetting(ctx context.Context, key string) (string, error) {
	list, err := client.ListSettings(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range list {
		if s.Key != key {
			continue
		}
		var next string
		switch s.Value {
		case "true":
			next = "false"
		case "false":
			next = "true"
		default:
			return "", &mise.ValidationError{Field: key, Reason: fmt.Sprintf("is not a boolean setting (value %q)", s.Value)}
		}
		return next, client.UpdateSetting(ctx, key, next)
	}

	return "", &mise.ValidationError{Field: key, Reason: "is not a known setting"}
}

func init() {
	settingsCmd.AddCommand(settingsListCmd, settingsSetCmd, settingsToggleCmd)
	rootCmd.AddCommand(settingsCmd)
}
