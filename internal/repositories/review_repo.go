package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(ctx context.Context, review models.Document) (*mongo.InsertOneResult, error)
	// ListApproved returns only approved reviews for the given book,
	// newest first. Pending reviews are never exposed through this path.
	ListApproved(ctx context.Context, bookID string) ([]models.Document, error)
}
