// Package commentsrepo provides the business layer for task comments.
package commentsrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/taskdeck/infrastructure/postgresdb"
	"github.com/jrazmi/taskdeck/sdk/logger"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
)

// Storer is the persistence contract the repository depends on.
type Storer interface {
	List(ctx context.Context) ([]Comment, error)
	ListByTaskID(ctx context.Context, taskID string) ([]Comment, error)
	GetByID(ctx context.Context, commentID int64) (Comment, error)
	Create(ctx context.Context, input CreateComment) (Comment, error)
	Update(ctx context.Context, commentID int64, content string) (Comment, error)
	Delete(ctx context.Context, commentID int64) error
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

func (r *Repository) List(ctx context.Context) ([]Comment, error) {
	comments, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return comments, nil
}

func (r *Repository) ListByTaskID(ctx context.Context, taskID string) ([]Comment, error) {
	comments, err := r.storer.ListByTaskID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("listbytaskid[%s]: %w", taskID, err)
	}
	return comments, nil
}

func (r *Repository) GetByID(ctx context.Context, commentID int64) (Comment, error) {
	comment, err := r.storer.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return Comment{}, ErrCommentNotFound
		}
		return Comment{}, fmt.Errorf("getbyid[%d]: %w", commentID, err)
	}
	return comment, nil
}

func (r *Repository) Create(ctx context.Context, input CreateComment) (Comment, error) {
	comment, err := r.storer.Create(ctx, input)
	if err != nil {
		return Comment{}, fmt.Errorf("create: %w", err)
	}

	r.log.InfoContext(ctx, "comment created", "comment_id", comment.CommentID, "task_id", comment.TaskID)
	return comment, nil
}

func (r *Repository) Update(ctx context.Context, commentID int64, content string) (Comment, error) {
	comment, err := r.storer.Update(ctx, commentID, content)
	if err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return Comment{}, ErrCommentNotFound
		}
		return Comment{}, fmt.Errorf("update[%d]: %w", commentID, err)
	}

	r.log.InfoContext(ctx, "comment updated", "comment_id", commentID)
	return comment, nil
}

func (r *Repository) Delete(ctx context.Context, commentID int64) error {
	if err := r.storer.Delete(ctx, commentID); err != nil {
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("delete[%d]: %w", commentID, err)
	}

	r.log.InfoContext(ctx, "comment deleted", "comment_id", commentID)
	return nil
}
