package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/misectl/misectl/src/internal/mise"
	pathutil "github.com/misectl/misectl/src/internal/path"
	"github.com/misectl/misectl/src/internal/tui"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Show mise diagnostics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var report *mise.DoctorResult
		err := withStatus("Running mise doctor", func() error {
			var err error
			report, err = client.Doctor(cmd.Context())
			return err
		})
		if err != nil {
			return err
		}

		return render(report, func() {
			printTable(doctorTable(report))
		})
	},
}

func yesNo(value bool) string {
	if value {
		return tui.GetCheckMark() + " yes"
	}
	return tui.GetCrossMark() + " no"
}

func doctorTable(report *mise.DoctorResult) string {
	table := tui.NewTable("Check", "Value")
	table.SetTitle("mise doctor")
	table.SetMaxCellWidth(0)

	table.AddRow("Version", tui.RenderVersion(report.Version))
	if report.BuildInfo.Target != "" {
		table.AddRow("Target", report.BuildInfo.Target)
	}
	if report.BuildInfo.Built != "" {
		table.AddRow("Built On", report.BuildInfo.Built)
	}
	table.AddRow("Activated", yesNo(report.Activated))
	table.AddRow("Shims on PATH", yesNo(report.ShimsOnPath))
	table.AddRow("Self Update Available", yesNo(report.SelfUpdateAvailable))
	table.AddRow("Shell", strings.TrimSpace(report.Shell.Name+" "+report.Shell.Version))

	for _, file := range report.ConfigFiles {
		table.AddRow("Config File", file)
	}
	for _, file := range report.IgnoredConfigFiles {
		table.AddRow("Ignored Config", tui.RenderMuted(file))
	}

	table.AddRow("Cache Dir", report.Dirs.Cache)
	table.AddRow("Config Dir", report.Dirs.Config)
	table.AddRow("Data Dir", report.Dirs.Data)
	table.AddRow("Shims Dir", report.Dirs.Shims)
	if report.Dirs.Shims != "" {
		table.AddRow("Shims on misectl PATH", yesNo(pathutil.IsInPath(report.Dirs.Shims)))
	}
	table.AddRow("State Dir", report.Dirs.State)

	for _, key := range sortedKeys(report.EnvVars) {
		table.AddRow("Env", fmt.Sprintf("%s=%s", key, report.EnvVars[key]))
	}

	tools := make([]string, 0, len(report.Toolset))
	for name := range report.Toolset {
		tools = append(tools, name)
	}
	sort.Strings(tools)
	for _, name := range tools {
		var versions []string
		for _, v := range report.Toolset[name] {
			versions = append(versions, v.Version)
		}
		table.AddRow("Toolset", fmt.Sprintf("%s@%s", name, strings.Join(versions, ", ")))
	}

	if report.Aqua != nil {
		table.AddRow("Aqua Baked-in Tools", fmt.Sprintf("%d", report.Aqua.BakedInRegistryTools))
	}

	return table.Render()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
