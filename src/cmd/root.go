// Package cmd implements the CLI commands for misectl
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/misectl/misectl/src/internal/config"
	"github.com/misectl/misectl/src/internal/mise"
	"github.com/misectl/misectl/src/internal/registry"
	"github.com/misectl/misectl/src/internal/tui"
	"github.com/misectl/misectl/src/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose      bool
	outputFormat string
	miseBin      string
)

// Set up once per process by setup
var (
	settings       *config.Settings
	client         *mise.Client
	registrySource registry.Source
	registryCache  *registry.CachedSource
)

var rootCmd = &cobra.Command{
	Use:           "misectl",
	Short:         "A terminal front-end for the mise tool version manager",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	// Check for --version or -v flag before Cobra parses
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			versionCmd.Run(versionCmd, []string{})
			return
		}
	}

	// Interrupting misectl also stops the running mise child
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if mise.IsCommandError(err) {
			ui.Debug("%v", err)
		}
		ui.Error("%s", mise.FormatError(err))
		stop()
		os.Exit(1)
	}
}

func init() {
	// Hide the completion command until we implement it
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: table, json or yaml")
	rootCmd.PersistentFlags().StringVar(&miseBin, "mise-bin", "", "Path to the mise binary")

	rootCmd.SetUsageFunc(customUsage)
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		_ = customUsage(cmd)
	})
}

// setup loads configuration and wires the mise client. Flags win over
// config.yaml and MISECTL_* variables.
func setup(cmd *cobra.Command) error {
	ui.CheckVerboseEnv()

	loaded, err := config.Load(config.DefaultPaths().ConfigFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		loaded.Verbose = verbose
	}
	if flags.Changed("output") {
		loaded.Output = outputFormat
		if err := config.ValidateOutput(loaded.Output); err != nil {
			return err
		}
	}
	if flags.Changed("mise-bin") {
		loaded.MiseBin = miseBin
	}

	ui.SetVerbose(loaded.Verbose || ui.IsVerbose())
	settings = loaded

	client = mise.NewClient(mise.NewRunner(mise.NewLocator(settings.MiseBin)))

	if settings.RegistryCacheTTL > 0 {
		if err := config.EnsureDirectories(); err != nil {
			ui.Debug("could not create %s: %v", config.DefaultPaths().Cache, err)
		}
		registryCache = registry.NewCachedSource(client, config.RegistryCachePath(), settings.RegistryCacheTTL)
		registrySource = registryCache
	} else {
		ui.Debug("Registry cache disabled")
		registryCache = nil
		registrySource = client
	}

	return nil
}

func customUsage(cmd *cobra.Command) error {
	const tableWidth = 95 // Consistent width for all tables
	out := cmd.OutOrStdout()

	headerTable := tui.NewTable("")
	headerTable.SetTitle(cmd.Short)
	headerTable.HideHeader()
	headerTable.SetMinWidth(tableWidth)
	if cmd == rootCmd {
		headerTable.AddRow("misectl wraps the mise CLI: browse installed and outdated tools, search the")
		headerTable.AddRow("registry, install, pin and upgrade versions, and inspect mise itself.")
	} else {
		headerTable.AddRow("Usage: " + cmd.UseLine())
	}

	fmt.Fprintln(out, headerTable.Render())
	fmt.Fprintln(out)

	if cmd.HasAvailableSubCommands() {
		table := tui.NewTable("Command", "Description")
		table.SetTitle("Available Commands")
		table.SetMinWidth(tableWidth)

		for _, c := range cmd.Commands() {
			// Skip hidden commands and completion
			if !c.IsAvailableCommand() || c.Name() == "completion" {
				continue
			}
			table.AddRow(c.Name(), c.Short)
		}

		fmt.Fprintln(out, table.Render())
	}

	if cmd.HasAvailableLocalFlags() {
		fmt.Fprintln(out, flagTable("Flags", cmd.LocalFlags(), tableWidth))
	}
	if cmd.HasAvailableInheritedFlags() {
		fmt.Fprintln(out, flagTable("Global Flags", cmd.InheritedFlags(), tableWidth))
	}

	return nil
}

func flagTable(title string, flags *pflag.FlagSet, width int) string {
	table := tui.NewTable("Flag", "Description")
	table.SetTitle(title)
	table.SetMinWidth(width)

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}
		table.AddRow(name, f.Usage)
	})

	return table.Render()
}
