package database

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMigration(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestRunMigrationsAppliesPendingFiles(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "001_create_planets.sql", "CREATE TABLE planets (doc JSONB NOT NULL);")
	writeMigration(t, dir, "002_index_planets.sql", "CREATE INDEX planets_id_idx ON planets ((doc->>'id'));")
	writeMigration(t, dir, "README.md", "ignored")

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	existsQuery := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)")
	recordExec := regexp.QuoteMeta("INSERT INTO schema_migrations (version) VALUES ($1)")

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(existsQuery).
		WithArgs("001_create_planets.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery(existsQuery).
		WithArgs("002_index_planets.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE INDEX planets_id_idx").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(recordExec).
		WithArgs("002_index_planets.sql").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	db := New(sqlDB, dir)
	require.NoError(t, db.RunMigrations(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsMissingDirectory(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	db := New(sqlDB, filepath.Join(t.TempDir(), "missing"))
	err = db.RunMigrations(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get migration files")
}
