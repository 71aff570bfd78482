package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/converters"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// ListInProgressCmd returns the list-inprogress command
func ListInProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-inprogress",
		Short: "List tasks that are in progress",
		Long: `List tasks whose status is exactly "in progress", most recently
updated first. Ties are broken by descending task id.

Examples:
  # Everything in progress
  tasktrack list-inprogress

  # The three most recently touched tasks
  tasktrack list-inprogress --limit=3

  # Also export the rows to a CSV file
  tasktrack list-inprogress --csv=inprogress.csv

  # JSON output for agents
  tasktrack list-inprogress --json
`,
		Args: cli.NoArgs,
		RunE: runListInProgress,
	}

	cmd.Flags().Int("limit", 0, "Maximum number of rows (0 or negative means all)")
	cmd.Flags().String("csv", "", "Also save the result to this CSV file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runListInProgress(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	limit, _ := cmd.Flags().GetInt("limit")
	csvPath, _ := cmd.Flags().GetString("csv")

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	tasks, err := cliInstance.App.TaskService.ListByStatus(ctx, types.StatusInProgress, limit)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	rows := converters.TasksWithUserToRecords(tasks)
	ids := make([]int64, len(tasks))
	for i, t := range tasks {
		ids[i] = t.GetID()
	}

	if err := formatter.List(tasks, ids, converters.TaskWithUserHeaders, rows); err != nil {
		return err
	}

	return cli.ExportCSV(formatter, csvPath, converters.TaskWithUserHeaders, rows)
}
