package planet

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"planets-api/internal/shared/database"
)

// PostgresRepository keeps each planet as a JSONB document in the planets
// table, mirroring the shape of the mongo collection.
type PostgresRepository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewPostgresRepository(db *database.DB, logger *slog.Logger) *PostgresRepository {
	logger.Debug("Initializing postgres planet repository")

	return &PostgresRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "find_by_id", "planet_id", id)
	logger.Debug("Finding planet")

	query := `
		SELECT doc
		FROM planets
		WHERE (doc->>'id')::numeric = $1
		LIMIT 1
	`

	var doc []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Debug("No planet matched")
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to query planet", "error", err)
		return nil, fmt.Errorf("failed to query planet: %w", err)
	}

	var planet Planet
	if err := json.Unmarshal(doc, &planet); err != nil {
		logger.Error("Failed to decode planet document", "error", err)
		return nil, fmt.Errorf("failed to decode planet: %w", err)
	}

	return &planet, nil
}
