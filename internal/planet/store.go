package planet

import (
	"context"
	"fmt"
	"log/slog"

	"planets-api/internal/shared/config"
	"planets-api/internal/shared/database"
	"planets-api/internal/shared/mongodb"
	"planets-api/internal/shared/redis"
)

// Store looks planet records up by id. FindByID returns (nil, nil) when no
// record matches.
type Store interface {
	FindByID(ctx context.Context, id int64) (*Planet, error)
}

// CloseFunc releases the connection behind a Store.
type CloseFunc func(ctx context.Context) error

// OpenStore connects the driver selected by STORE_DRIVER. The returned
// CloseFunc must be called on shutdown.
func OpenStore(ctx context.Context, cfg *config.Config) (Store, CloseFunc, error) {
	logger := slog.With("component", "planet_store", "operation", "open", "driver", cfg.Store.Driver)
	logger.Debug("Opening planet store")

	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		client, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		return NewMongoRepository(client.Collection(), logger), client.Close, nil

	case config.StoreDriverPostgres:
		db, err := database.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return NewPostgresRepository(db, logger), func(context.Context) error { return db.Close() }, nil

	case config.StoreDriverRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisRepository(client, logger), func(context.Context) error { return client.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}
