package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/askloop/askloop-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	plain := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows maps to not found", sql.ErrNoRows, store.ErrNotFound},
		{
			"wrapped no rows maps to not found",
			fmt.Errorf("query accounts: %w", sql.ErrNoRows),
			store.ErrNotFound,
		},
		{
			"unique violation maps to duplicate",
			&pgconn.PgError{Code: "23505", ConstraintName: "unique_username"},
			store.ErrDuplicate,
		},
		{
			"foreign key violation maps to invalid reference",
			&pgconn.PgError{Code: "23503", ConstraintName: "fk_answers_question"},
			store.ErrInvalidReference,
		},
		{
			"other pg error passes through",
			&pgconn.PgError{Code: "57014"},
			nil,
		},
		{"plain error passes through", plain, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.want != nil {
				assert.ErrorIs(t, got, tt.want)
				return
			}
			assert.Equal(t, tt.err, got)
		})
	}
}

func TestViolationPredicates(t *testing.T) {
	t.Parallel()

	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("other")))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(unique))
}

// fakeResult implements sql.Result with a fixed row count.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrAccountNotFound))
	assert.ErrorIs(t, CheckRowsAffected(fakeResult{rows: 0}, store.ErrAccountNotFound), store.ErrAccountNotFound)
	assert.Error(t, CheckRowsAffected(fakeResult{err: errors.New("driver does not support")}, store.ErrAccountNotFound))
}
