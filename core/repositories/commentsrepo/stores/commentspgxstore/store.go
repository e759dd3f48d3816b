// Package commentspgxstore implements commentsrepo.Storer against PostgreSQL.
package commentspgxstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskdeck/core/repositories/commentsrepo"
	"github.com/jrazmi/taskdeck/infrastructure/postgresdb"
	"github.com/jrazmi/taskdeck/sdk/logger"
)

const commentColumns = `comment_id, task_id, content, created_at`

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

func (s *Store) List(ctx context.Context) ([]commentsrepo.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	sl, err := pgx.CollectRows(rows, pgx.RowToStructByName[commentsrepo.Comment])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return sl, nil
}

func (s *Store) ListByTaskID(ctx context.Context, taskID string) ([]commentsrepo.Comment, error) {
	query := `SELECT ` + commentColumns + `
		FROM comments
		WHERE task_id = @task_id
		ORDER BY created_at`

	args := pgx.NamedArgs{
		"task_id": taskID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	sl, err := pgx.CollectRows(rows, pgx.RowToStructByName[commentsrepo.Comment])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return sl, nil
}

func (s *Store) GetByID(ctx context.Context, commentID int64) (commentsrepo.Comment, error) {
	query := `SELECT ` + commentColumns + `
		FROM comments
		WHERE comment_id = @comment_id`

	args := pgx.NamedArgs{
		"comment_id": commentID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return commentsrepo.Comment{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	comment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[commentsrepo.Comment])
	if err != nil {
		return commentsrepo.Comment{}, postgresdb.HandlePgError(err)
	}

	return comment, nil
}

func (s *Store) Create(ctx context.Context, input commentsrepo.CreateComment) (commentsrepo.Comment, error) {
	query := `INSERT INTO comments (task_id, content)
		VALUES (@task_id, @content)
		RETURNING ` + commentColumns

	args := pgx.NamedArgs{
		"task_id": input.TaskID,
		"content": input.Content,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return commentsrepo.Comment{}, postgresdb.HandlePgError(err)
	}

	comment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[commentsrepo.Comment])
	if err != nil {
		return commentsrepo.Comment{}, postgresdb.HandlePgError(err)
	}

	return comment, nil
}

func (s *Store) Update(ctx context.Context, commentID int64, content string) (commentsrepo.Comment, error) {
	query := `UPDATE comments SET content = @content
		WHERE comment_id = @comment_id
		RETURNING ` + commentColumns

	args := pgx.NamedArgs{
		"comment_id": commentID,
		"content":    content,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return commentsrepo.Comment{}, postgresdb.HandlePgError(err)
	}

	comment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[commentsrepo.Comment])
	if err != nil {
		return commentsrepo.Comment{}, postgresdb.HandlePgError(err)
	}

	return comment, nil
}

func (s *Store) Delete(ctx context.Context, commentID int64) error {
	query := `DELETE FROM comments WHERE comment_id = @comment_id`

	args := pgx.NamedArgs{
		"comment_id": commentID,
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
