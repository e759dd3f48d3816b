// Package tasklinkspgxstore implements tasklinksrepo.Storer against
// PostgreSQL.
package tasklinkspgxstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskdeck/core/repositories/tasklinksrepo"
	"github.com/jrazmi/taskdeck/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdeck/infrastructure/postgresdb"
	"github.com/jrazmi/taskdeck/sdk/logger"
)

const linkColumns = `task_link_id, parent_id, child_id, relation`

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

func (s *Store) ListChildren(ctx context.Context, parentID string) ([]tasksrepo.Task, error) {
	query := `SELECT t.task_id, t.title, t.description, t.state, t.due_at, t.created_at, t.updated_at, t.closed_at
		FROM tasks t
		JOIN task_links tl ON tl.child_id = t.task_id
		WHERE tl.parent_id = @parent_id
		AND tl.relation = @relation`

	args := pgx.NamedArgs{
		"parent_id": parentID,
		"relation":  tasklinksrepo.RelationSubtask,
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

func (s *Store) GetParent(ctx context.Context, childID string) (tasksrepo.Task, error) {
	query := `SELECT t.task_id, t.title, t.description, t.state, t.due_at, t.created_at, t.updated_at, t.closed_at
		FROM tasks t
		JOIN task_links tl ON tl.parent_id = t.task_id
		WHERE tl.child_id = @child_id
		AND tl.relation = @relation`

	args := pgx.NamedArgs{
		"child_id": childID,
		"relation": tasklinksrepo.RelationSubtask,
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

func (s *Store) Create(ctx context.Context, parentID string, childID string, relation string) (tasklinksrepo.TaskLink, error) {
	query := `INSERT INTO task_links (parent_id, child_id, relation)
		VALUES (@parent_id, @child_id, @relation)
		RETURNING ` + linkColumns

	args := pgx.NamedArgs{
		"parent_id": parentID,
		"child_id":  childID,
		"relation":  relation,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasklinksrepo.TaskLink{}, postgresdb.HandlePgError(err)
	}

	link, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasklinksrepo.TaskLink])
	if err != nil {
		return tasklinksrepo.TaskLink{}, postgresdb.HandlePgError(err)
	}

	return link, nil
}

func (s *Store) Delete(ctx context.Context, parentID string, childID string, relation string) error {
	query := `DELETE FROM task_links
		WHERE parent_id = @parent_id
		AND child_id = @child_id
		AND relation = @relation`

	args := pgx.NamedArgs{
		"parent_id": parentID,
		"child_id":  childID,
		"relation":  relation,
	}

	tag, err := s.pool.Exec(ctx, query, args)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return postgresdb.ErrDBNotFound
	}

	return nil
}

// ReplaceParent deletes the existing subtask parent edge and inserts the new
// one in a single transaction.
func (s *Store) ReplaceParent(ctx context.Context, childID string, newParentID *string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	defer tx.Rollback(ctx)

	del := `DELETE FROM task_links
		WHERE child_id = @child_id
		AND relation = @relation`

	args := pgx.NamedArgs{
		"child_id": childID,
		"relation": tasklinksrepo.RelationSubtask,
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
			"relation":  tasklinksrepo.RelationSubtask,
		}

		if _, err := tx.Exec(ctx, ins, insArgs); err != nil {
			return postgresdb.HandlePgError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return postgresdb.HandlePgError(err)
	}
	return nil
}
