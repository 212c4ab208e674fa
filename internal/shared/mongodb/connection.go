package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"planets-api/internal/shared/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Client struct {
	*mongo.Client
	database   string
	collection string
}

// Connect dials the document store named by MONGO_URI, authenticating with
// MONGO_USERNAME/MONGO_PASSWORD when a username is configured.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Client, error) {
	logger := slog.With("component", "mongodb", "operation", "connect")
	logger.Info("Connecting to MongoDB",
		"database", cfg.Database,
		"collection", cfg.Collection,
		"auth", cfg.Username != "",
	)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout)
	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("Failed to create MongoDB client", "error", err)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Error("Failed to ping MongoDB", "error", err)
		if discErr := client.Disconnect(ctx); discErr != nil {
			logger.Error("Failed to disconnect after ping failure", "disconnect_error", discErr)
		}
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info("MongoDB Connection Successful")

	return &Client{Client: client, database: cfg.Database, collection: cfg.Collection}, nil
}

// Collection returns the configured planets collection.
func (c *Client) Collection() *mongo.Collection {
	return c.Database(c.database).Collection(c.collection)
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Disconnect(ctx)
}
