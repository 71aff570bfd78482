package user

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/converters"
)

// WithoutTasksCmd returns the users-without-tasks command
func WithoutTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users-without-tasks",
		Short: "List users that own no task",
		Long: `List users that own no task, ordered by full name.

Examples:
  tasktrack users-without-tasks

  # Export to CSV (an empty result writes an empty file)
  tasktrack users-without-tasks --csv=idle.csv
`,
		Args: cli.NoArgs,
		RunE: runWithoutTasks,
	}

	cmd.Flags().String("csv", "", "Also save the result to this CSV file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runWithoutTasks(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	csvPath, _ := cmd.Flags().GetString("csv")

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	users, err := cliInstance.App.UserService.WithoutTasks(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	rows := converters.UsersToRecords(users)
	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.GetID()
	}

	if err := formatter.List(users, ids, converters.UserHeaders, rows); err != nil {
		return err
	}

	return cli.ExportCSV(formatter, csvPath, converters.UserHeaders, rows)
}
