// Package taskspgxstore implements tasksrepo.Storer against PostgreSQL.
package taskspgxstore

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskdeck/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdeck/infrastructure/postgresdb"
	"github.com/jrazmi/taskdeck/sdk/logger"
)

const taskColumns = `task_id, title, description, state, due_at, created_at, updated_at, closed_at`

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

func (s *Store) List(ctx context.Context) ([]tasksrepo.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	sl, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return sl, nil
}

func (s *Store) GetByID(ctx context.Context, taskID string) (tasksrepo.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE task_id = @task_id`

	args := pgx.NamedArgs{
		"task_id": taskID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return task, nil
}

// Search matches term as a substring of title. ILIKE makes the match
// case-insensitive, which is the documented choice for this store.
func (s *Store) Search(ctx context.Context, term string) ([]tasksrepo.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE title ILIKE @pattern`

	args := pgx.NamedArgs{
		"pattern": "%" + escapeLike(term) + "%",
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	sl, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return sl, nil
}

func (s *Store) ListByState(ctx context.Context, state string) ([]tasksrepo.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE state = @state`

	args := pgx.NamedArgs{
		"state": state,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	sl, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return sl, nil
}

func (s *Store) ListByLabelID(ctx context.Context, labelID int64) ([]tasksrepo.Task, error) {
	query := `SELECT t.task_id, t.title, t.description, t.state, t.due_at, t.created_at, t.updated_at, t.closed_at
		FROM tasks t
		JOIN task_labels tl ON tl.task_id = t.task_id
		WHERE tl.label_id = @label_id`

	args := pgx.NamedArgs{
		"label_id": labelID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	sl, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return sl, nil
}

func (s *Store) ListOverdue(ctx context.Context, now time.Time) ([]tasksrepo.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE due_at < @now
		AND state NOT IN (@done, @cancelled)`

	args := pgx.NamedArgs{
		"now":       now,
		"done":      tasksrepo.StateDone,
		"cancelled": tasksrepo.StateCancelled,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	sl, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return sl, nil
}

// Create inserts the task row and, when parentID is set, the subtask link,
// in a single transaction so a partial failure never leaves a task without
// its intended parent.
func (s *Store) Create(ctx context.Context, task tasksrepo.Task, parentID *string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	defer tx.Rollback(ctx)

	insert := `INSERT INTO tasks
			(task_id, title, description, state, due_at, created_at, updated_at, closed_at)
		VALUES
			(@task_id, @title, @description, @state, @due_at, @created_at, @updated_at, @closed_at)`

	args := pgx.NamedArgs{
		"task_id":     task.TaskID,
		"title":       task.Title,
		"description": task.Description,
		"state":       task.State,
		"due_at":      task.DueAt,
		"created_at":  task.CreatedAt,
		"updated_at":  task.UpdatedAt,
		"closed_at":   task.ClosedAt,
	}

	if _, err := tx.Exec(ctx, insert, args); err != nil {
		return postgresdb.HandlePgError(err)
	}

	if parentID != nil {
		link := `INSERT INTO task_links (parent_id, child_id, relation)
			VALUES (@parent_id, @child_id, @relation)`

		linkArgs := pgx.NamedArgs{
			"parent_id": *parentID,
			"child_id":  task.TaskID,
			"relation":  "subtask",
		}

		if _, err := tx.Exec(ctx, link, linkArgs); err != nil {
			return postgresdb.HandlePgError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return postgresdb.HandlePgError(err)
	}
	return nil
}

// Update applies the partial field set and returns the stored row. When
// input.SetParent is true the subtask parent link is replaced in the same
// transaction. Returns ErrDBNotFound when the id does not exist.
func (s *Store) Update(ctx context.Context, taskID string, input tasksrepo.UpdateTask, updatedAt time.Time) (tasksrepo.Task, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer tx.Rollback(ctx)

	sets := []string{"updated_at = @updated_at"}
	args := pgx.NamedArgs{
		"task_id":    taskID,
		"updated_at": updatedAt,
	}

	if input.Title != nil {
		sets = append(sets, "title = @title")
		args["title"] = *input.Title
	}
	switch {
	case input.ClearDescription:
		sets = append(sets, "description = NULL")
	case input.Description != nil:
		sets = append(sets, "description = @description")
		args["description"] = *input.Description
	}
	if input.State != nil {
		sets = append(sets, "state = @state")
		args["state"] = *input.State
	}
	switch {
	case input.ClearDueAt:
		sets = append(sets, "due_at = NULL")
	case input.DueAt != nil:
		sets = append(sets, "due_at = @due_at")
		args["due_at"] = *input.DueAt
	}

	query := `UPDATE tasks SET ` + strings.Join(sets, ", ") + `
		WHERE task_id = @task_id
		RETURNING ` + taskColumns

	rows, err := tx.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	if input.SetParent {
		if err := replaceParentTx(ctx, tx, taskID, input.ParentID); err != nil {
			return tasksrepo.Task{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	return task, nil
}

// Delete removes the task and its link rows in both directions in one
// transaction. The FK cascades would clean the links anyway; the explicit
// deletes keep the behavior visible and the cascade as backstop.
func (s *Store) Delete(ctx context.Context, taskID string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"task_id": taskID}

	if _, err := tx.Exec(ctx, `DELETE FROM task_links WHERE child_id = @task_id OR parent_id = @task_id`, args); err != nil {
		return postgresdb.HandlePgError(err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM tasks WHERE task_id = @task_id`, args)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return postgresdb.ErrDBNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return postgresdb.HandlePgError(err)
	}
	return nil
}

// replaceParentTx deletes the existing subtask parent edge and inserts the
// new one when newParentID is set. At most one subtask parent remains.
func replaceParentTx(ctx context.Context, tx pgx.Tx, childID string, newParentID *string) error {
	del := `DELETE FROM task_links WHERE child_id = @child_id AND relation = @relation`

	args := pgx.NamedArgs{
		"child_id": childID,
		"relation": "subtask",
	}

	if _, err := tx.Exec(ctx, del, args); err != nil {
		return postgresdb.HandlePgError(err)
	}

	if newParentID != nil {
		ins := `INSERT INTO task_links (parent_id, child_id, relation)
			VALUES (@parent_id, @child_id, @relation)`

		insArgs := pgx.NamedArgs{
			"parent_id": *newParentID,
			"child_id":  childID,
			"relation":  "subtask",
		}

		if _, err := tx.Exec(ctx, ins, insArgs); err != nil {
			return postgresdb.HandlePgError(err)
		}
	}

	return nil
}

// escapeLike escapes LIKE wildcards so a search term matches literally.
func escapeLike(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, `%`, `\%`)
	term = strings.ReplaceAll(term, `_`, `\_`)
	return term
}
