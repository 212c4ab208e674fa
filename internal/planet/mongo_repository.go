package planet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

func NewMongoRepository(collection *mongo.Collection, logger *slog.Logger) *MongoRepository {
	logger.Debug("Initializing mongo planet repository", "collection", collection.Name())

	return &MongoRepository{
		collection: collection,
		logger:     logger,
	}
}

func (r *MongoRepository) FindByID(ctx context.Context, id int64) (*Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "find_by_id", "planet_id", id)
	logger.Debug("Finding planet")

	var planet Planet
	err := r.collection.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&planet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		logger.Debug("No planet matched")
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to find planet", "error", err)
		return nil, fmt.Errorf("failed to find planet: %w", err)
	}

	return &planet, nil
}
