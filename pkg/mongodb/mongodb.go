package mongodb

import (
	"context"
	"fmt"

	"fintrack/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Connect builds a Mongo client from the configured connection string and
// verifies the server is reachable before returning it. The caller owns the
// client and is responsible for Disconnect on shutdown.
func Connect(ctx context.Context, cfg *config.DatabaseConfig, logger *zap.Logger) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info("Database connection established",
		zap.String("database", cfg.Name),
	)

	return client, nil
}
