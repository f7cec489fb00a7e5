package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
)

// TutorialRepository defines the interface for tutorial data access.
type TutorialRepository interface {
	Create(ctx context.Context, tutorial models.Document) (*mongo.InsertOneResult, error)
	// List returns tutorials in reverse-insertion order, newest first.
	List(ctx context.Context) ([]models.Document, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
}
