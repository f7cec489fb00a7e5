package repositories

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
)

// MongoBookRepository is a MongoDB implementation of BookRepository.
type MongoBookRepository struct {
	crudRepository
}

// NewMongoBookRepository creates a new instance of MongoBookRepository.
func NewMongoBookRepository(coll *mongo.Collection) *MongoBookRepository {
	return &MongoBookRepository{crudRepository{coll: coll}}
}

// Create inserts a new book document.
func (r *MongoBookRepository) Create(ctx context.Context, book models.Document) (*mongo.InsertOneResult, error) {
	return r.insertOne(ctx, book)
}

// List returns books matching the optional search term and genre.
func (r *MongoBookRepository) List(ctx context.Context, search, genre string) ([]models.Document, error) {
	return r.find(ctx, bookFilter(search, genre))
}

// GetByID returns a single book, or nil if absent.
func (r *MongoBookRepository) GetByID(ctx context.Context, id string) (models.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// Update merges the given fields onto the identified book.
func (r *MongoBookRepository) Update(ctx context.Context, id string, partial models.Document) (*mongo.UpdateResult, error) {
	return r.updateByID(ctx, id, partial)
}

// Delete removes a book by id. Deleting a missing id yields a
// zero-count result, not an error.
func (r *MongoBookRepository) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return r.deleteByID(ctx, id)
}

// bookFilter builds the listing filter: an $or of case-insensitive
// substring regexes on title and author when search is supplied, plus
// an exact genre match when genre is supplied.
func bookFilter(search, genre string) bson.M {
	filter := bson.M{}
	if search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": re},
			{"author": re},
		}
	}
	if genre != "" {
		filter["genre"] = genre
	}
	return filter
}
