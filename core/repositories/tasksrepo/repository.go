// Package tasksrepo provides access to task storage.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jrazmi/taskdeck/infrastructure/postgresdb"
	"github.com/jrazmi/taskdeck/sdk/logger"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

// ========================================
// STORER INTERFACE
// ========================================

// Storer defines the complete data storage interface for Task.
type Storer interface {
	List(ctx context.Context) ([]Task, error)
	GetByID(ctx context.Context, taskID string) (Task, error)
	Search(ctx context.Context, term string) ([]Task, error)
	ListByState(ctx context.Context, state string) ([]Task, error)
	ListByLabelID(ctx context.Context, labelID int64) ([]Task, error)
	ListOverdue(ctx context.Context, now time.Time) ([]Task, error)
	Create(ctx context.Context, task Task, parentID *string) error
	Update(ctx context.Context, taskID string, input UpdateTask, updatedAt time.Time) (Task, error)
	Delete(ctx context.Context, taskID string) error
}

// ========================================
// REPOSITORY
// ========================================

// Repository provides access to task storage. It assigns identifiers and
// timestamps, translates store errors to repository sentinels, and logs
// mutations.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Task repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// List returns all task rows. No ordering contract.
func (r *Repository) List(ctx context.Context) ([]Task, error) {
	tasks, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// GetByID returns a single task or ErrTaskNotFound.
func (r *Repository) GetByID(ctx context.Context, taskID string) (Task, error) {
	task, err := r.storer.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, fmt.Errorf("get task %s: %w", taskID, err)
	}
	return task, nil
}

// Search returns tasks whose title contains term as a substring.
func (r *Repository) Search(ctx context.Context, term string) ([]Task, error) {
	tasks, err := r.storer.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}
	return tasks, nil
}

// ListByState returns tasks matching the exact state.
func (r *Repository) ListByState(ctx context.Context, state string) ([]Task, error) {
	tasks, err := r.storer.ListByState(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("list tasks by state: %w", err)
	}
	return tasks, nil
}

// ListByLabelID returns tasks carrying the label, resolved in a single
// joined query.
func (r *Repository) ListByLabelID(ctx context.Context, labelID int64) ([]Task, error) {
	tasks, err := r.storer.ListByLabelID(ctx, labelID)
	if err != nil {
		return nil, fmt.Errorf("list tasks by label: %w", err)
	}
	return tasks, nil
}

// ListOverdue returns tasks past their due date that are still open.
func (r *Repository) ListOverdue(ctx context.Context) ([]Task, error) {
	tasks, err := r.storer.ListOverdue(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list overdue tasks: %w", err)
	}
	return tasks, nil
}

// Create inserts a fully-populated row and returns it as confirmation
// without a re-read. A missing TaskID gets a fresh UUID; a missing State
// defaults to todo. When input.ParentID is set the subtask link is written
// in the same transaction as the task row.
func (r *Repository) Create(ctx context.Context, input CreateTask) (Task, error) {
	now := time.Now().UTC()

	task := Task{
		TaskID:      input.TaskID,
		Title:       input.Title,
		Description: input.Description,
		State:       input.State,
		DueAt:       input.DueAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.TaskID == "" {
		task.TaskID = uuid.NewString()
	}
	if task.State == "" {
		task.State = StateTodo
	}

	if err := r.storer.Create(ctx, task, input.ParentID); err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	r.log.InfoContext(ctx, "created task", "task_id", task.TaskID)
	return task, nil
}

// Update applies a partial field set, always touching updated_at, and
// returns the stored row. ErrTaskNotFound when the id does not exist.
func (r *Repository) Update(ctx context.Context, taskID string, input UpdateTask) (Task, error) {
	task, err := r.storer.Update(ctx, taskID, input, time.Now().UTC())
	if err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, fmt.Errorf("update task %s: %w", taskID, err)
	}

	r.log.InfoContext(ctx, "updated task", "task_id", taskID)
	return task, nil
}

// Delete removes the task row and its link rows in both directions.
// Label attachments go with the row via FK cascade.
// ErrTaskNotFound when the id does not exist.
func (r *Repository) Delete(ctx context.Context, taskID string) error {
	if err := r.storer.Delete(ctx, taskID); err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("delete task %s: %w", taskID, err)
	}

	r.log.InfoContext(ctx, "deleted task", "task_id", taskID)
	return nil
}
