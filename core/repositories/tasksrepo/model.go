package tasksrepo

import "time"

// Task states. State is constrained to this set at the schema level; the
// API layer normalizes anything else to StateTodo before it gets here.
const (
	StateTodo       = "todo"
	StateInProgress = "in_progress"
	StateDone       = "done"
	StateCancelled  = "cancelled"
)

// KnownState reports whether s is one of the four task states.
func KnownState(s string) bool {
	switch s {
	case StateTodo, StateInProgress, StateDone, StateCancelled:
		return true
	}
	return false
}

// Task is a persisted task row.
type Task struct {
	TaskID      string     `db:"task_id" json:"task_id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	State       string     `db:"state" json:"state"`
	DueAt       *time.Time `db:"due_at" json:"due_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
	ClosedAt    *time.Time `db:"closed_at" json:"closed_at"`
}

// CreateTask contains fields for creating a new task. TaskID is assigned by
// the repository when empty. ParentID, when set, creates the subtask link in
// the same transaction as the insert.
type CreateTask struct {
	TaskID      string
	Title       string
	Description *string
	State       string
	DueAt       *time.Time
	ParentID    *string
}

// UpdateTask contains fields for updating an existing task. Nil pointers mean
// "leave unchanged". The Clear flags express an explicit null, which a nil
// pointer alone cannot. SetParent replaces the subtask parent link inside the
// update transaction; with SetParent true and ParentID nil the link is removed.
type UpdateTask struct {
	Title            *string
	Description      *string
	ClearDescription bool
	State            *string
	DueAt            *time.Time
	ClearDueAt       bool
	SetParent        bool
	ParentID         *string
}
