package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DatabaseName is the logical database all collections live in.
const DatabaseName = "book-worm"

const connectTimeout = 10 * time.Second

// Client wraps a single long-lived MongoDB connection shared by all
// repositories. The driver pools connections internally, so one Client
// per process is enough.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Config holds MongoDB connection details.
type Config struct {
	URI string
}

// New connects to MongoDB and verifies the connection with a ping against
// the admin database. A failure here is fatal for the caller; there is no
// retry at this layer.
func New(cfg Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(DatabaseName),
	}, nil
}

// Collection returns a handle to a named collection. Absent collections
// behave as empty; no existence check is made.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Close disconnects the underlying client.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}
