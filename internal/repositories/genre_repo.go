package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
)

// GenreRepository defines the interface for genre data access.
type GenreRepository interface {
	// Create rejects a name already taken by a case-insensitively equal
	// genre with ErrGenreExists. The check and the insert are separate
	// store operations; concurrent creates of the same name can race.
	Create(ctx context.Context, genre models.Document) (*mongo.InsertOneResult, error)
	// List returns all genres sorted ascending by name.
	List(ctx context.Context) ([]models.Document, error)
	Update(ctx context.Context, id string, partial models.Document) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}
