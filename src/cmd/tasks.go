package cmd

import (
	"strings"

	"github.com/misectl/misectl/src/internal/mise"
	"github.com/misectl/misectl/src/internal/tui"
	"github.com/misectl/misectl/src/internal/ui"
	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List mise tasks",
}

var tasksListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks defined for the current directory",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := client.ListTasks(cmd.Context())
		if err != nil {
			return err
		}

		return render(tasks, func() {
			if len(tasks) == 0 {
				ui.Info("No tasks defined")
				return
			}
			table := tui.NewTable("Task", "Description", "Depends", "Source")
			table.SetTitle("Tasks")
			for _, task := range tasks {
				table.AddRow(tui.RenderTool(task.Name), task.Description, strings.Join(task.Depends, ", "), tui.RenderMuted(task.Source))
			}
			printTable(table.Render())
		})
	},
}

var tasksRunCommandCmd = &cobra.Command{
	Use:   "run-command <task>",
	Short: "Print the command that runs a task",
	Long: `Print the shell command that runs a task, for copying or scripting.

Example:
  eval "$(misectl tasks run-command build)"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		printTable(mise.TaskRunCommand(args[0]))
	},
}

func init() {
	tasksCmd.AddCommand(tasksListCmd, tasksRunCommandCmd)
	rootCmd.AddCommand(tasksCmd)
}
