package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user models.Document) (*mongo.InsertOneResult, error)
	GetAll(ctx context.Context) ([]models.Document, error)
	// GetByEmail matches the exact email string; it returns nil when no
	// user exists.
	GetByEmail(ctx context.Context, email string) (models.Document, error)
}
