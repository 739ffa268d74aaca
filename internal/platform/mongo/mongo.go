// Package mongo dials the document store holding visitor carts and drafts.
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultDatabase is used when MONGO_DATABASE is not configured.
const DefaultDatabase = "storefront"

// Connect opens a MongoDB database handle and verifies connectivity.
func Connect(ctx context.Context, uri, database string) (*mongo.Database, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, fmt.Errorf("mongo URI is empty")
	}
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client.Database(database), nil
}

// ConnectFromEnv dials MongoDB using MONGO_URI and MONGO_DATABASE. A missing
// URI or failed ping logs a warning and returns nil so callers fall back to
// the in-memory cart repository.
func ConnectFromEnv(ctx context.Context, logger *slog.Logger) (*mongo.Database, func()) {
	uri := strings.TrimSpace(os.Getenv("MONGO_URI"))
	if uri == "" {
		if logger != nil {
			logger.Warn("MONGO_URI not set, falling back to in-memory cart repository")
		}
		return nil, func() {}
	}
	database := strings.TrimSpace(os.Getenv("MONGO_DATABASE"))
	if database == "" {
		database = DefaultDatabase
	}
	db, err := Connect(ctx, uri, database)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to connect to mongo, falling back to in-memory cart repository", slog.String("error", err.Error()))
		}
		return nil, func() {}
	}
	if logger != nil {
		logger.Info("mongo connection established", slog.String("database", database))
	}
	return db, func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Client().Disconnect(disconnectCtx)
	}
}
