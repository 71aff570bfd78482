package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/models"
	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// AddTaskCmd returns the add-task command
func AddTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-task",
		Short: "Add a task for a user",
		Long: `Add a task owned by an existing user.

Omitting --status files the task as "new". A status that does not exist
fails and lists the available names. Omitting --desc leaves the description
absent, while --desc="" stores an empty one.

Examples:
  # Simple task (human-readable output)
  tasktrack add-task --uid=3 --title="Fix login"

  # With description and status
  tasktrack add-task --uid=3 --title="Fix login" --desc="Session expires early" --status="in progress"

  # Quiet mode for bash capture
  TASK_ID=$(tasktrack add-task --uid=3 --title="Fix login" --quiet)
`,
		Args: cli.NoArgs,
		RunE: runAddTask,
	}

	cmd.Flags().Int64("uid", 0, "Owning user ID (required)")
	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("desc", "", "Task description")
	cmd.Flags().String("status", "", `Status name (default "new")`)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAddTask(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	for _, name := range []string{"uid", "title"} {
		if err := cli.RequireFlag(cmd, name); err != nil {
			return cli.Fail(formatter, err)
		}
	}

	uid, _ := cmd.Flags().GetInt64("uid")
	title, _ := cmd.Flags().GetString("title")
	status, _ := cmd.Flags().GetString("status")

	description := models.NoDescription()
	if cmd.Flags().Changed("desc") {
		desc, _ := cmd.Flags().GetString("desc")
		description = models.DescriptionOf(desc)
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		UserID:      types.UserID(uid),
		Title:       title,
		Description: description,
		Status:      status,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if status == "" {
		status = types.DefaultStatus
	}
	if formatter.JSON || formatter.Quiet {
		return formatter.Message(task.GetID(), task, "")
	}

	owner, err := cliInstance.App.UserService.GetUser(ctx, task.UserID)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	return formatter.Message(task.GetID(), task,
		fmt.Sprintf("Added task %d for %s (user %d, status: %s)", task.ID, owner.Fullname, task.UserID, status))
}
