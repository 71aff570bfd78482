package provision

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/app"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/cli/styles"
	"github.com/thenoetrevino/tasktrack/internal/config"
	"github.com/thenoetrevino/tasktrack/internal/database"
	"github.com/thenoetrevino/tasktrack/internal/logging"
	"github.com/thenoetrevino/tasktrack/internal/seed"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// SeedCmd returns the tasktrack-seed root command. Flag defaults come from cfg.
func SeedCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasktrack-seed",
		Short: "Create and populate a tasktrack database",
		Long: `Create the schema (if needed) and insert a reproducible synthetic
population of users and tasks. The fixed seed makes two runs against fresh
databases produce identical rows.

Roughly a quarter to a third of the users receive no task, statuses are
assigned round-robin and descriptions are absent, empty or populated.

Examples:
  # Defaults: 12 users, 40 tasks
  tasktrack-seed --db=tasktrack.db

  # Bigger population with a custom schema script
  tasktrack-seed --db=demo.db --users=200 --tasks=1000 --ddl=schema.sql
`,
		Args:          cli.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSeed,
	}

	cmd.Flags().String("db", cfg.Database, "Path to the SQLite database (created if missing)")
	cmd.Flags().Int("users", cfg.Seed.Users, "Number of users to generate")
	cmd.Flags().Int("tasks", cfg.Seed.Tasks, "Number of tasks to generate")
	cmd.Flags().String("ddl", "", "Schema script to run first (default: built-in schema)")
	cmd.Flags().Uint64("seed", seed.DefaultSeed, "Random seed")
	_ = cmd.Flags().MarkHidden("seed")
	cli.AddOutputFlags(cmd)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.AsUsageError(err)
	})

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	dbPath, _ := cmd.Flags().GetString("db")
	users, _ := cmd.Flags().GetInt("users")
	tasks, _ := cmd.Flags().GetInt("tasks")
	ddlPath, _ := cmd.Flags().GetString("ddl")
	seedValue, _ := cmd.Flags().GetUint64("seed")

	if users < 0 || tasks < 0 {
		return cli.Fail(formatter, cli.Usagef("--users and --tasks must not be negative"))
	}
	if dbPath == "" {
		return cli.Fail(formatter, cli.Usagef("--db must not be empty"))
	}

	ddl, err := database.LoadDDL(ddlPath)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	db, err := database.Open(ctx, dbPath)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	application := app.New(database.NewRepository(db), app.WithLogger(logging.Logger))
	defer func() {
		if err := application.Close(); err != nil {
			logging.Logger.Error("failed to close database", "error", err)
		}
	}()

	if err := database.Bootstrap(ctx, db, ddl); err != nil {
		return cli.Fail(formatter, err)
	}

	result, err := seed.NewSeeder(application.Repo(), logging.Logger).Seed(ctx, seed.Config{
		Users: users,
		Tasks: tasks,
		Seed:  seedValue,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	absPath, err := filepath.Abs(dbPath)
	if err != nil {
		absPath = dbPath
	}

	switch {
	case formatter.Quiet:
		fmt.Println(absPath)
		return nil
	case formatter.JSON:
		return formatter.Success(map[string]any{
			"db":     absPath,
			"result": result,
		})
	}

	summary := styles.SuccessStyle.Render(fmt.Sprintf("Seeded %d users and %d tasks into %s", result.Users, result.Tasks, absPath))
	if _, err := lipgloss.Fprintln(os.Stdout, summary); err != nil {
		return err
	}
	idle := fmt.Sprintf("Users without tasks: %d of %d", result.UsersWithoutTasks(), result.Users)
	if _, err := lipgloss.Fprintln(os.Stdout, styles.TitleStyle.Render(idle)); err != nil {
		return err
	}
	_, err = lipgloss.Fprintln(os.Stdout, styles.RenderTable([]string{"status", "tasks"}, statusRows(result)))
	return err
}

// statusRows lists the default vocabulary first, then any other status the store holds
func statusRows(result *seed.Result) [][]string {
	names := types.DefaultStatuses()
	extra := make([]string, 0)
	for name := range result.StatusCounts {
		if !slices.Contains(names, name) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)

	rows := make([][]string, 0, len(result.StatusCounts))
	for _, name := range append(names, extra...) {
		count, ok := result.StatusCounts[name]
		if !ok {
			continue
		}
		rows = append(rows, []string{name, strconv.Itoa(count)})
	}
	return rows
}
