package types

// ID type aliases provide semantic meaning and reduce repetitive int64 conversions.
// Every table uses an auto-assigned integer surrogate key; these types document
// which table a given key belongs to.

// StatusID identifies a row in the status vocabulary
type StatusID int64

// UserID identifies a unique user
type UserID int64

// TaskID identifies a unique task
type TaskID int64

// Status names of the fixed vocabulary, in insertion order
const (
	StatusNew        = "new"
	StatusInProgress = "in progress"
	StatusCompleted  = "completed"
)

// DefaultStatuses is the vocabulary inserted at provisioning time.
// Order matters: the seeder cycles over statuses in this order.
func DefaultStatuses() []string {
	return []string{StatusNew, StatusInProgress, StatusCompleted}
}

// DefaultStatus is assigned to tasks created without an explicit status
const DefaultStatus = StatusNew
