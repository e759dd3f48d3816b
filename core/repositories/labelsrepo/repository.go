// Package labelsrepo provides the business layer for labels and for the
// task/label attachment set.
package labelsrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/taskdeck/infrastructure/postgresdb"
	"github.com/jrazmi/taskdeck/sdk/logger"
)

var (
	ErrLabelNotFound = errors.New("label not found")
)

// Storer is the persistence contract the repository depends on.
type Storer interface {
	List(ctx context.Context) ([]Label, error)
	GetByID(ctx context.Context, labelID int64) (Label, error)
	ListByTaskID(ctx context.Context, taskID string) ([]Label, error)
	Create(ctx context.Context, input CreateLabel) (Label, error)
	Update(ctx context.Context, labelID int64, input UpdateLabel) (Label, error)
	Delete(ctx context.Context, labelID int64) error
	AttachmentExists(ctx context.Context, taskID string, labelID int64) (bool, error)
	Attach(ctx context.Context, taskID string, labelID int64) error
	Detach(ctx context.Context, taskID string, labelID int64) error
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

func (r *Repository) List(ctx context.Context) ([]Label, error) {
	labels, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return labels, nil
}

func (r *Repository) GetByID(ctx context.Context, labelID int64) (Label, error) {
	label, err := r.storer.GetByID(ctx, labelID)
	if err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return Label{}, ErrLabelNotFound
		}
		return Label{}, fmt.Errorf("getbyid[%d]: %w", labelID, err)
	}
	return label, nil
}

// ListByTaskID returns the labels attached to a task, resolved in a single
// joined query.
func (r *Repository) ListByTaskID(ctx context.Context, taskID string) ([]Label, error) {
	labels, err := r.storer.ListByTaskID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("listbytaskid[%s]: %w", taskID, err)
	}
	return labels, nil
}

func (r *Repository) Create(ctx context.Context, input CreateLabel) (Label, error) {
	label, err := r.storer.Create(ctx, input)
	if err != nil {
		return Label{}, fmt.Errorf("create: %w", err)
	}

	r.log.InfoContext(ctx, "label created", "label_id", label.LabelID)
	return label, nil
}

func (r *Repository) Update(ctx context.Context, labelID int64, input UpdateLabel) (Label, error) {
	label, err := r.storer.Update(ctx, labelID, input)
	if err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return Label{}, ErrLabelNotFound
		}
		return Label{}, fmt.Errorf("update[%d]: %w", labelID, err)
	}

	r.log.InfoContext(ctx, "label updated", "label_id", labelID)
	return label, nil
}

func (r *Repository) Delete(ctx context.Context, labelID int64) error {
	if err := r.storer.Delete(ctx, labelID); err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return ErrLabelNotFound
		}
		return fmt.Errorf("delete[%d]: %w", labelID, err)
	}

	r.log.InfoContext(ctx, "label deleted", "label_id", labelID)
	return nil
}

// AddTaskLabel attaches a label to a task. Attaching an already attached
// label is a no-op, so the call is idempotent.
func (r *Repository) AddTaskLabel(ctx context.Context, taskID string, labelID int64) error {
	exists, err := r.storer.AttachmentExists(ctx, taskID, labelID)
	if err != nil {
		return fmt.Errorf("attachmentexists[%s,%d]: %w", taskID, labelID, err)
	}
	if exists {
		return nil
	}

	if err := r.storer.Attach(ctx, taskID, labelID); err != nil {
		// A concurrent attach can still race past the check; the unique
		// constraint catches it and the outcome is the same no-op.
		if errors.Is(err, postgresdb.ErrDBDuplicatedEntry) {
			return nil
		}
		return fmt.Errorf("attach[%s,%d]: %w", taskID, labelID, err)
	}

	r.log.InfoContext(ctx, "label attached", "task_id", taskID, "label_id", labelID)
	return nil
}

// RemoveTaskLabel detaches a label from a task. Detaching a label that is
// not attached is a no-op.
func (r *Repository) RemoveTaskLabel(ctx context.Context, taskID string, labelID int64) error {
	if err := r.storer.Detach(ctx, taskID, labelID); err != nil {
		return fmt.Errorf("detach[%s,%d]: %w", taskID, labelID, err)
	}

	r.log.InfoContext(ctx, "label detached", "task_id", taskID, "label_id", labelID)
	return nil
}
