package repository_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/JaimeStill/quarx/pkg/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	errNotFound  = errors.New("record not found")
	errDuplicate = errors.New("record exists")
)

func TestMapError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, errNotFound},
		{"wrapped no rows", fmt.Errorf("query: %w", sql.ErrNoRows), errNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, errDuplicate},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, nil},
		{"passthrough", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.MapError(tt.err, errNotFound, errDuplicate)
			if tt.name == "other pg error" {
				var pgErr *pgconn.PgError
				if !errors.As(got, &pgErr) {
					t.Errorf("MapError() = %v, want original pg error", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("MapError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDuplicate(t *testing.T) {
	if !repository.IsDuplicate(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})) {
		t.Error("IsDuplicate() = false for wrapped unique violation")
	}
	if repository.IsDuplicate(errors.New("plain")) {
		t.Error("IsDuplicate() = true for plain error")
	}
}
