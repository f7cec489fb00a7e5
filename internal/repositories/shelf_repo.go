package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// ShelfRepository defines the interface for reading-shelf data access.
type ShelfRepository interface {
	// Upsert writes the shelf entry keyed by (userId, bookInfo):
	// inserted when absent, otherwise the shelf label and updatedAt are
	// overwritten in place. updatedAt is stamped on every write.
	Upsert(ctx context.Context, userID string, bookInfo interface{}, shelf string) (*mongo.UpdateResult, error)
}
