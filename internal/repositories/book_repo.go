package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
)

// BookRepository defines the interface for book data access.
type BookRepository interface {
	Create(ctx context.Context, book models.Document) (*mongo.InsertOneResult, error)
	// List filters by a case-insensitive substring match on title or
	// author (when search is set) and an exact genre match (when genre
	// is set). Both empty means all books.
	List(ctx context.Context, search, genre string) ([]models.Document, error)
	// GetByID returns nil when no book has the given id.
	GetByID(ctx context.Context, id string) (models.Document, error)
	Update(ctx context.Context, id string, partial models.Document) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}
