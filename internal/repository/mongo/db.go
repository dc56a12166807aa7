package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rensmac/portfolio-api/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersColl           = "users"
	aboutColl           = "about"
	projectsColl        = "projects"
	skillsColl          = "skills"
	skillCategoriesColl = "skill_categories"
	blogsColl           = "blogs"
)

// DB wraps the MongoDB client and the application database handle
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDB connects to MongoDB and verifies the connection
func NewDB(ctx context.Context, cfg config.MongoConfig) (*DB, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return &DB{client: client, db: client.Database(cfg.Database)}, nil
}

// Collection returns a handle on a collection in the application database
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Ping checks connectivity, used by the readiness probe
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
