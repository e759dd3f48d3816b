// Package tasklinksrepo provides the business layer for the task hierarchy
// edges stored in task_links.
package tasklinksrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/taskdeck/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdeck/infrastructure/postgresdb"
	"github.com/jrazmi/taskdeck/sdk/logger"
)

var (
	ErrLinkNotFound = errors.New("task link not found")
)

// Storer is the persistence contract the repository depends on.
type Storer interface {
	ListChildren(ctx context.Context, parentID string) ([]tasksrepo.Task, error)
	GetParent(ctx context.Context, childID string) (tasksrepo.Task, error)
	Create(ctx context.Context, parentID string, childID string, relation string) (TaskLink, error)
	Delete(ctx context.Context, parentID string, childID string, relation string) error
	ReplaceParent(ctx context.Context, childID string, newParentID *string) error
}

type Repository struct {
	log    *logger.Logger
	storer Storer
}

func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// ListChildren returns the subtasks of a task, resolved in a single joined
// query.
func (r *Repository) ListChildren(ctx context.Context, parentID string) ([]tasksrepo.Task, error) {
	children, err := r.storer.ListChildren(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("listchildren[%s]: %w", parentID, err)
	}
	return children, nil
}

// GetParent returns the subtask parent of a task, or nil when the task is a
// root.
func (r *Repository) GetParent(ctx context.Context, childID string) (*tasksrepo.Task, error) {
	parent, err := r.storer.GetParent(ctx, childID)
	if err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getparent[%s]: %w", childID, err)
	}
	return &parent, nil
}

func (r *Repository) Create(ctx context.Context, parentID string, childID string, relation string) (TaskLink, error) {
	if relation == "" {
		relation = RelationSubtask
	}

	link, err := r.storer.Create(ctx, parentID, childID, relation)
	if err != nil {
		return TaskLink{}, fmt.Errorf("create[%s->%s]: %w", parentID, childID, err)
	}

	r.log.InfoContext(ctx, "task link created", "parent_id", parentID, "child_id", childID, "relation", relation)
	return link, nil
}

func (r *Repository) Delete(ctx context.Context, parentID string, childID string, relation string) error {
	if relation == "" {
		relation = RelationSubtask
	}

	if err := r.storer.Delete(ctx, parentID, childID, relation); err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("delete[%s->%s]: %w", parentID, childID, err)
	}

	r.log.InfoContext(ctx, "task link deleted", "parent_id", parentID, "child_id", childID, "relation", relation)
	return nil
}

// ReplaceParent removes the existing subtask parent edge of childID and, when
// newParentID is set, installs the new one. Passing nil detaches the task
// from the hierarchy.
func (r *Repository) ReplaceParent(ctx context.Context, childID string, newParentID *string) error {
	if err := r.storer.ReplaceParent(ctx, childID, newParentID); err != nil {
		return fmt.Errorf("replaceparent[%s]: %w", childID, err)
	}

	r.log.InfoContext(ctx, "task parent replaced", "child_id", childID)
	return nil
}
