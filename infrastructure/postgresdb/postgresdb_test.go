package postgresdb_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jrazmi/taskdeck/infrastructure/postgresdb"
)

func TestHandlePgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"unique violation", &pgconn.PgError{Code: "23505"}, postgresdb.ErrDBDuplicatedEntry},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, postgresdb.ErrDBForeignKeyBroken},
		{"undefined table", &pgconn.PgError{Code: "42P01"}, postgresdb.ErrUndefinedTable},
		{"no rows", pgx.ErrNoRows, postgresdb.ErrDBNotFound},
		{"wrapped no rows", fmt.Errorf("querying: %w", pgx.ErrNoRows), postgresdb.ErrDBNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := postgresdb.HandlePgError(tt.err)
			if !errors.Is(got, tt.want) && got != tt.want {
				t.Errorf("HandlePgError = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandlePgErrorPassesThroughUnknown(t *testing.T) {
	sentinel := errors.New("connection reset")
	if got := postgresdb.HandlePgError(sentinel); got != sentinel {
		t.Errorf("HandlePgError = %v, want the original error", got)
	}
}
