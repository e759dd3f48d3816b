// Package labelspgxstore implements labelsrepo.Storer against PostgreSQL.
package labelspgxstore

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskdeck/core/repositories/labelsrepo"
	"github.com/jrazmi/taskdeck/infrastructure/postgresdb"
	"github.com/jrazmi/taskdeck/sdk/logger"
)

const labelColumns = `label_id, name, color, created_at`

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

func (s *Store) List(ctx context.Context) ([]labelsrepo.Label, error) {
	query := `SELECT ` + labelColumns + ` FROM labels`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	sl, err := pgx.CollectRows(rows, pgx.RowToStructByName[labelsrepo.Label])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return sl, nil
}

func (s *Store) GetByID(ctx context.Context, labelID int64) (labelsrepo.Label, error) {
	query := `SELECT ` + labelColumns + `
		FROM labels
		WHERE label_id = @label_id`

	args := pgx.NamedArgs{
		"label_id": labelID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return labelsrepo.Label{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	label, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[labelsrepo.Label])
	if err != nil {
		return labelsrepo.Label{}, postgresdb.HandlePgError(err)
	}

	return label, nil
}

func (s *Store) ListByTaskID(ctx context.Context, taskID string) ([]labelsrepo.Label, error) {
	query := `SELECT l.label_id, l.name, l.color, l.created_at
		FROM labels l
		JOIN task_labels tl ON tl.label_id = l.label_id
		WHERE tl.task_id = @task_id`

	args := pgx.NamedArgs{
		"task_id": taskID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	sl, err := pgx.CollectRows(rows, pgx.RowToStructByName[labelsrepo.Label])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return sl, nil
}

func (s *Store) Create(ctx context.Context, input labelsrepo.CreateLabel) (labelsrepo.Label, error) {
	query := `INSERT INTO labels (name, color)
		VALUES (@name, @color)
		RETURNING ` + labelColumns

	args := pgx.NamedArgs{
		"name":  input.Name,
		"color": input.Color,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return labelsrepo.Label{}, postgresdb.HandlePgError(err)
	}

	label, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[labelsrepo.Label])
	if err != nil {
		return labelsrepo.Label{}, postgresdb.HandlePgError(err)
	}

	return label, nil
}

func (s *Store) Update(ctx context.Context, labelID int64, input labelsrepo.UpdateLabel) (labelsrepo.Label, error) {
	sets := []string{}
	args := pgx.NamedArgs{
		"label_id": labelID,
	}

	if input.Name != nil {
		sets = append(sets, "name = @name")
		args["name"] = *input.Name
	}
	switch {
	case input.ClearColor:
		sets = append(sets, "color = NULL")
	case input.Color != nil:
		sets = append(sets, "color = @color")
		args["color"] = *input.Color
	}

	if len(sets) == 0 {
		return s.GetByID(ctx, labelID)
	}

	query := `UPDATE labels SET ` + strings.Join(sets, ", ") + `
		WHERE label_id = @label_id
		RETURNING ` + labelColumns

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return labelsrepo.Label{}, postgresdb.HandlePgError(err)
	}

	label, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[labelsrepo.Label])
	if err != nil {
		return labelsrepo.Label{}, postgresdb.HandlePgError(err)
	}

	return label, nil
}

// Delete removes the label; the task_labels FK cascade drops its attachments.
func (s *Store) Delete(ctx context.Context, labelID int64) error {
	query := `DELETE FROM labels WHERE label_id = @label_id`

	args := pgx.NamedArgs{
		"label_id": labelID,
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

func (s *Store) AttachmentExists(ctx context.Context, taskID string, labelID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM task_labels
		WHERE task_id = @task_id AND label_id = @label_id
	)`

	args := pgx.NamedArgs{
		"task_id":  taskID,
		"label_id": labelID,
	}

	var exists bool
	if err := s.pool.QueryRow(ctx, query, args).Scan(&exists); err != nil {
		return false, postgresdb.HandlePgError(err)
	}

	return exists, nil
}

func (s *Store) Attach(ctx context.Context, taskID string, labelID int64) error {
	query := `INSERT INTO task_labels (task_id, label_id)
		VALUES (@task_id, @label_id)`

	args := pgx.NamedArgs{
		"task_id":  taskID,
		"label_id": labelID,
	}

	if _, err := s.pool.Exec(ctx, query, args); err != nil {
		return postgresdb.HandlePgError(err)
	}

	return nil
}

func (s *Store) Detach(ctx context.Context, taskID string, labelID int64) error {
	query := `DELETE FROM task_labels
		WHERE task_id = @task_id AND label_id = @label_id`

	args := pgx.NamedArgs{
		"task_id":  taskID,
		"label_id": labelID,
	}

	if _, err := s.pool.Exec(ctx, query, args); err != nil {
		return postgresdb.HandlePgError(err)
	}

	return nil
}
