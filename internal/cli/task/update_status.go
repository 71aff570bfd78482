package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// UpdateStatusCmd returns the update-status command
func UpdateStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-status",
		Short: "Move a task to another status",
		Long: `Move a task to any status. Transitions are unconstrained; the task's
updated_at timestamp always moves forward.

Examples:
  tasktrack update-status --task-id=42 --status=completed

  # JSON output for agents
  tasktrack update-status --task-id=42 --status="in progress" --json
`,
		Args: cli.NoArgs,
		RunE: runUpdateStatus,
	}

	cmd.Flags().Int64("task-id", 0, "Task ID (required)")
	cmd.Flags().String("status", "", "New status name (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdateStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	for _, name := range []string{"task-id", "status"} {
		if err := cli.RequireFlag(cmd, name); err != nil {
			return cli.Fail(formatter, err)
		}
	}

	taskID, _ := cmd.Flags().GetInt64("task-id")
	status, _ := cmd.Flags().GetString("status")

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	task, err := cliInstance.App.TaskService.UpdateStatus(ctx, taskservice.UpdateStatusRequest{
		TaskID: types.TaskID(taskID),
		Status: status,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	return formatter.Message(task.GetID(), task, fmt.Sprintf("Task %d moved to '%s'", task.ID, status))
}
