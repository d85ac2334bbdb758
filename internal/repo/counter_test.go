package repo_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/aclo-store/checkout-service/internal/repo"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestPostgresRepo_IncrementOrderSeq(t *testing.T) {
	upsert := regexp.QuoteMeta("INSERT INTO order_counters (date_key, seq) VALUES ($1, 1)")

	t.Run("first order of the day", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(upsert).
			WithArgs("250830").
			WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(1))

		r := repo.NewPostgresRepo(db)

		seq, err := r.IncrementOrderSeq(context.Background(), "250830")
		require.NoError(t, err)
		assert.Equal(t, 1, seq)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing counter is bumped", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(upsert).
			WithArgs("250830").
			WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(42))

		r := repo.NewPostgresRepo(db)

		seq, err := r.IncrementOrderSeq(context.Background(), "250830")
		require.NoError(t, err)
		assert.Equal(t, 42, seq)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		dbError := errors.New("connection reset")
		mock.ExpectQuery(upsert).
			WithArgs("250830").
			WillReturnError(dbError)

		r := repo.NewPostgresRepo(db)

		_, err := r.IncrementOrderSeq(context.Background(), "250830")
		assert.ErrorIs(t, err, dbError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
