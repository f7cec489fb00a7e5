package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookworm/internal/models"
)

// MongoTutorialRepository is a MongoDB implementation of TutorialRepository.
type MongoTutorialRepository struct {
	crudRepository
}

// NewMongoTutorialRepository creates a new instance of MongoTutorialRepository.
func NewMongoTutorialRepository(coll *mongo.Collection) *MongoTutorialRepository {
	return &MongoTutorialRepository{crudRepository{coll: coll}}
}

// Create inserts a new tutorial document.
func (r *MongoTutorialRepository) Create(ctx context.Context, tutorial models.Document) (*mongo.InsertOneResult, error) {
	return r.insertOne(ctx, tutorial)
}

// List returns tutorials newest first. ObjectIDs embed the insertion
// time, so a descending _id sort is reverse-insertion order.
func (r *MongoTutorialRepository) List(ctx context.Context) ([]models.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

// Delete removes a tutorial by id.
func (r *MongoTutorialRepository) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return r.deleteByID(ctx, id)
}
