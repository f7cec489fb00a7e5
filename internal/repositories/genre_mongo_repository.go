package repositories

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookworm/internal/models"
)

// MongoGenreRepository is a MongoDB implementation of GenreRepository.
type MongoGenreRepository struct {
	crudRepository
}

// NewMongoGenreRepository creates a new instance of MongoGenreRepository.
func NewMongoGenreRepository(coll *mongo.Collection) *MongoGenreRepository {
	return &MongoGenreRepository{crudRepository{coll: coll}}
}

// Create inserts a genre after checking for a case-insensitive
// duplicate name. An exact-match lookup is not enough here; "Fantasy"
// and "FANTASY" must collide.
func (r *MongoGenreRepository) Create(ctx context.Context, genre models.Document) (*mongo.InsertOneResult, error) {
	name, _ := genre["name"].(string)
	existing, err := r.findOne(ctx, bson.M{"name": genreNameEquals(name)})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrGenreExists
	}
	return r.insertOne(ctx, genre)
}

// List returns all genres sorted ascending by name.
func (r *MongoGenreRepository) List(ctx context.Context) ([]models.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return r.find(ctx, bson.M{}, opts)
}

// Update merges the given fields onto the identified genre.
func (r *MongoGenreRepository) Update(ctx context.Context, id string, partial models.Document) (*mongo.UpdateResult, error) {
	return r.updateByID(ctx, id, partial)
}

// Delete removes a genre by id.
func (r *MongoGenreRepository) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return r.deleteByID(ctx, id)
}

// genreNameEquals builds an anchored case-insensitive equality match on
// a genre name.
func genreNameEquals(name string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"}
}
