package planet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"planets-api/internal/shared/redis"

	goredis "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "planets:"

// RedisRepository reads planet documents stored as JSON strings under
// planets:<id>.
type RedisRepository struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisRepository(client *redis.Client, logger *slog.Logger) *RedisRepository {
	logger.Debug("Initializing redis planet repository")

	return &RedisRepository{
		client: client,
		logger: logger,
	}
}

func RedisKey(id int64) string {
	return fmt.Sprintf("%s%d", redisKeyPrefix, id)
}

func (r *RedisRepository) FindByID(ctx context.Context, id int64) (*Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "find_by_id", "planet_id", id)
	logger.Debug("Finding planet")

	doc, err := r.client.Get(ctx, RedisKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		logger.Debug("No planet matched")
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to get planet", "error", err)
		return nil, fmt.Errorf("failed to get planet: %w", err)
	}

	var planet Planet
	if err := json.Unmarshal(doc, &planet); err != nil {
		logger.Error("Failed to decode planet document", "error", err)
		return nil, fmt.Errorf("failed to decode planet: %w", err)
	}

	return &planet, nil
}
