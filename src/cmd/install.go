package cmd

import (
	"fmt"

	"github.com/misectl/misectl/src/internal/mise"
	"github.com/spf13/cobra"
)

var (
	installVersion  string
	installBackend  string
	installActivate string
	installPin      bool
	installForce    bool
)

var installCmd = &cobra.Command{
	Use:   "install <tool>",
	Short: "Install a tool",
	Long: `Install a tool with mise. With --activate local or global the version is
also recorded in the project or global config (mise use).

Examples:
  misectl install node --version 20
  misectl install ripgrep --backend cargo
  misectl install python --version 3.12 --activate global --pin
  misectl install npm:prettier --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		activation, err := mise.ParseActivation(installActivate)
		if err != nil {
			return err
		}
		if installPin && activation == mise.ActivateNone {
			return &mise.ValidationError{Field: "--pin", Reason: "requires --activate local or global"}
		}

		opts := mise.InstallOptions{
			Version:  installVersion,
			Backend:  installBackend,
			Activate: activation,
			Pin:      installPin,
			Force:    installForce,
		}
		spec := mise.BuildToolSpec(args[0], installVersion, installBackend)

		return withSpinner("Installing "+spec, installedMessage(spec, activation), func() error {
			return client.InstallTool(cmd.Context(), args[0], opts)
		})
	},
}

func installedMessage(spec string, activation mise.Activation) string {
	switch activation {
	case mise.ActivateGlobal:
		return fmt.Sprintf("Installed %s and set it globally", spec)
	case mise.ActivateLocal:
		return fmt.Sprintf("Installed %s and set it for this project", spec)
	default:
		return fmt.Sprintf("Installed %s", spec)
	}
}

func init() {
	installCmd.Flags().StringVar(&installVersion, "version", "", "Version to install (default: latest)")
	installCmd.Flags().StringVar(&installBackend, "backend", "", "Backend to install from, e.g. cargo, npm, ubi")
	installCmd.Flags().StringVar(&installActivate, "activate", "none", "Also activate the version: none, local or global")
	installCmd.Flags().BoolVar(&installPin, "pin", false, "Record the exact version instead of the requested prefix")
	installCmd.Flags().BoolVar(&installForce, "force", false, "Reinstall even if already installed")
	rootCmd.AddCommand(installCmd)
}
