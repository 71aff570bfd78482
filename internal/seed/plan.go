package seed

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/thenoetrevino/tasktrack/internal/models"
)

// DefaultSeed is the fixed seed of the provisioning tool
const DefaultSeed uint64 = 1337

// Fraction bounds of users that receive at least one task
const (
	MinTaskedFraction = 0.65
	MaxTaskedFraction = 0.75
)

// Probabilities of the three description states; they sum to 1
const (
	ProbDescriptionAbsent    = 0.2
	ProbDescriptionEmpty     = 0.1
	ProbDescriptionPopulated = 0.7
)

// maxEmailRetries bounds how often the faker is asked again before an email is mutated
const maxEmailRetries = 10

var (
	ErrNoUsers    = errors.New("cannot generate tasks without users")
	ErrNoStatuses = errors.New("cannot generate tasks without statuses")
	ErrNegative   = errors.New("user and task counts must not be negative")
)

// Config sizes a synthetic population
type Config struct {
	Users int
	Tasks int
	Seed  uint64
}

// UserSpec is a user to insert
type UserSpec struct {
	Fullname string
	Email    string
}

// TaskSpec is a task to insert. Owner indexes Plan.Users and
// StatusIndex indexes the status list in insertion order.
type TaskSpec struct {
	Title       string
	Description models.Description
	Owner       int
	StatusIndex int
}

// Plan is the complete, store-independent description of a population
type Plan struct {
	Users []UserSpec
	// Tasked holds the ordinals of users that receive tasks, ascending.
	// Every one of them owns at least one task.
	Tasked   []int
	Fraction float64
	Tasks    []TaskSpec
}

// Untasked returns the ordinals of users outside the tasked subset, ascending
func (p *Plan) Untasked() []int {
	out := make([]int, 0, len(p.Users)-len(p.Tasked))
	for i := range p.Users {
		if _, found := slices.BinarySearch(p.Tasked, i); !found {
			out = append(out, i)
		}
	}
	return out
}

// BuildPlan derives a population from cfg. rng drives structure, faker drives content;
// both must be freshly seeded for the result to be reproducible.
func BuildPlan(cfg Config, statusCount int, rng Rand, faker Faker) (*Plan, error) {
	if cfg.Users < 0 || cfg.Tasks < 0 {
		return nil, ErrNegative
	}
	if cfg.Tasks > 0 && cfg.Users == 0 {
		return nil, ErrNoUsers
	}
	if cfg.Tasks > 0 && statusCount <= 0 {
		return nil, ErrNoStatuses
	}

	plan := &Plan{Users: generateUsers(cfg.Users, faker)}

	var order []int
	plan.Fraction, order = pickTasked(cfg.Users, cfg.Tasks, rng)
	plan.Tasked = slices.Sorted(slices.Values(order))

	plan.Tasks = make([]TaskSpec, cfg.Tasks)
	for i := range plan.Tasks {
		plan.Tasks[i] = TaskSpec{
			Title:       faker.Title(),
			StatusIndex: i % statusCount,
			Owner:       pickOwner(i, order, rng),
			Description: drawDescription(rng, faker),
		}
	}

	return plan, nil
}

// generateUsers produces n users with pairwise distinct emails
func generateUsers(n int, faker Faker) []UserSpec {
	users := make([]UserSpec, n)
	seen := make(map[string]struct{}, n)
	for i := range users {
		users[i] = UserSpec{Fullname: faker.Name(), Email: uniqueEmail(faker, seen)}
	}
	return users
}

// uniqueEmail asks the faker again on a collision and, if it keeps colliding,
// appends a counter to the local part until the address is unused.
func uniqueEmail(faker Faker, seen map[string]struct{}) string {
	email := faker.Email()
	for retry := 0; retry < maxEmailRetries; retry++ {
		if _, dup := seen[email]; !dup {
			seen[email] = struct{}{}
			return email
		}
		email = faker.Email()
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		local, domain = email, "example.com"
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s%d@%s", local, n, domain)
		if _, dup := seen[candidate]; !dup {
			seen[candidate] = struct{}{}
			return candidate
		}
	}
}

// pickTasked draws the tasked fraction and a subset of that size, in the
// shuffled order its members receive their first task. The subset holds at
// least one user and never more users than there are tasks.
func pickTasked(users, tasks int, rng Rand) (float64, []int) {
	fraction := MinTaskedFraction + (MaxTaskedFraction-MinTaskedFraction)*rng.Float64()
	if users == 0 {
		return fraction, []int{}
	}

	k := int(math.Round(float64(users) * fraction))
	k = min(max(1, min(k, users)), tasks)

	return fraction, rng.Perm(users)[:k]
}

// pickOwner hands task i to the i-th member of order while some member still
// has no task, then to a uniformly drawn member.
func pickOwner(i int, order []int, rng Rand) int {
	if i < len(order) {
		return order[i]
	}
	return order[rng.IntN(len(order))]
}

// drawDescription samples one of the three description states
func drawDescription(rng Rand, faker Faker) models.Description {
	r := rng.Float64()
	switch {
	case r < ProbDescriptionAbsent:
		return models.NoDescription()
	case r < ProbDescriptionAbsent+ProbDescriptionEmpty:
		return models.EmptyDescription()
	default:
		text := faker.Paragraph()
		if text == "" {
			text = faker.Title()
		}
		return models.Description{State: models.DescriptionPopulated, Text: text}
	}
}
