package planet

import (
	"context"
	"errors"
	"testing"

	"planets-api/internal/shared/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const findDocQuery = `SELECT doc\s+FROM planets\s+WHERE \(doc->>'id'\)::numeric = \$1\s+LIMIT 1`

func newPostgresRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewPostgresRepository(database.New(sqlDB, ""), discardLogger()), mock
}

func TestPostgresRepositoryFindByID(t *testing.T) {
	repo, mock := newPostgresRepo(t)

	mock.ExpectQuery(findDocQuery).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).
			AddRow([]byte(`{"name":"Earth","id":3,"description":"Blue planet","velocity":"29.78 km/s"}`)))

	got, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, &Planet{Name: "Earth", ID: 3, Description: "Blue planet", Velocity: "29.78 km/s"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepositoryNoMatch(t *testing.T) {
	repo, mock := newPostgresRepo(t)

	mock.ExpectQuery(findDocQuery).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}))

	got, err := repo.FindByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPostgresRepositoryQueryError(t *testing.T) {
	repo, mock := newPostgresRepo(t)
	cause := errors.New("connection reset by peer")

	mock.ExpectQuery(findDocQuery).
		WithArgs(int64(999)).
		WillReturnError(cause)

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, cause)
}

func TestPostgresRepositoryBadDocument(t *testing.T) {
	repo, mock := newPostgresRepo(t)

	mock.ExpectQuery(findDocQuery).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`{"id":"one"}`)))

	_, err := repo.FindByID(context.Background(), 1)
	assert.ErrorContains(t, err, "failed to decode planet")
}
