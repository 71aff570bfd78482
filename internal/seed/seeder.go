package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tasktrack/internal/database"
	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// Result summarizes one seeding run
type Result struct {
	Seed         uint64         `json:"seed"`
	Users        int            `json:"users"`
	Tasks        int            `json:"tasks"`
	Fraction     float64        `json:"fraction"`
	TaskedUsers  int            `json:"tasked_users"`
	UntaskedIDs  []types.UserID `json:"untasked_user_ids"`
	StatusCounts map[string]int `json:"status_counts"`
}

// UsersWithoutTasks is the number of users that received no task
func (r *Result) UsersWithoutTasks() int {
	return len(r.UntaskedIDs)
}

// Seeder populates a store with a synthetic population
type Seeder struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewSeeder creates a seeder writing through repo
func NewSeeder(repo database.DataStore, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{repo: repo, logger: logger}
}

// Seed builds a plan from cfg with streams seeded from cfg.Seed and applies it
func (s *Seeder) Seed(ctx context.Context, cfg Config) (*Result, error) {
	return s.SeedWith(ctx, cfg, NewRand(cfg.Seed), NewFaker(cfg.Seed))
}

// SeedWith is Seed with caller-supplied streams
func (s *Seeder) SeedWith(ctx context.Context, cfg Config, rng Rand, faker Faker) (*Result, error) {
	var result *Result
	err := s.repo.InBatch(ctx, func(b database.Batch) error {
		if err := b.EnsureStatuses(ctx, types.DefaultStatuses()); err != nil {
			return err
		}
		statuses, err := b.Statuses(ctx)
		if err != nil {
			return err
		}

		plan, err := BuildPlan(cfg, len(statuses), rng, faker)
		if err != nil {
			return err
		}

		result, err = Apply(ctx, b, plan, statuses)
		return err
	})
	if err != nil {
		s.logger.Error("seeding failed", "users", cfg.Users, "tasks", cfg.Tasks, "seed", cfg.Seed, "error", err)
		return nil, fmt.Errorf("seeding store: %w", err)
	}

	result.Seed = cfg.Seed
	s.logger.Info("seeded store",
		"users", result.Users,
		"tasks", result.Tasks,
		"tasked_users", result.TaskedUsers,
		"users_without_tasks", result.UsersWithoutTasks(),
		"seed", cfg.Seed)
	return result, nil
}

// Apply writes plan through b. statuses must be in insertion order, matching
// the status indexes the plan was built against.
func Apply(ctx context.Context, b database.Batch, plan *Plan, statuses []models.Status) (*Result, error) {
	userIDs := make([]types.UserID, len(plan.Users))
	for i, u := range plan.Users {
		id, err := b.InsertUser(ctx, u.Fullname, u.Email)
		if err != nil {
			return nil, fmt.Errorf("inserting user %q: %w", u.Email, err)
		}
		userIDs[i] = id
	}

	counts := make(map[string]int, len(statuses))
	for _, st := range statuses {
		counts[st.Name] = 0
	}

	owned := make([]bool, len(userIDs))
	for i, t := range plan.Tasks {
		if t.StatusIndex < 0 || t.StatusIndex >= len(statuses) {
			return nil, fmt.Errorf("task %d: status index %d out of range", i, t.StatusIndex)
		}
		if t.Owner < 0 || t.Owner >= len(userIDs) {
			return nil, fmt.Errorf("task %d: owner %d out of range", i, t.Owner)
		}
		status := statuses[t.StatusIndex]
		if _, err := b.InsertTask(ctx, userIDs[t.Owner], t.Title, t.Description, status.ID); err != nil {
			return nil, fmt.Errorf("inserting task %d: %w", i, err)
		}
		counts[status.Name]++
		owned[t.Owner] = true
	}

	// reported from the owners actually written, not from the planned subset
	untaskedIDs := make([]types.UserID, 0, len(userIDs))
	for ord, id := range userIDs {
		if !owned[ord] {
			untaskedIDs = append(untaskedIDs, id)
		}
	}

	return &Result{
		Users:        len(plan.Users),
		Tasks:        len(plan.Tasks),
		Fraction:     plan.Fraction,
		TaskedUsers:  len(userIDs) - len(untaskedIDs),
		UntaskedIDs:  untaskedIDs,
		StatusCounts: counts,
	}, nil
}
