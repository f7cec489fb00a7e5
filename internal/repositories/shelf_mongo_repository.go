package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoShelfRepository is a MongoDB implementation of ShelfRepository.
type MongoShelfRepository struct {
	crudRepository
}

// NewMongoShelfRepository creates a new instance of MongoShelfRepository.
func NewMongoShelfRepository(coll *mongo.Collection) *MongoShelfRepository {
	return &MongoShelfRepository{crudRepository{coll: coll}}
}

// Upsert writes the entry for (userId, bookInfo) with a fresh
// updatedAt. Single-document upserts are atomic at the store, so at
// most one entry exists per pair.
func (r *MongoShelfRepository) Upsert(ctx context.Context, userID string, bookInfo interface{}, shelf string) (*mongo.UpdateResult, error) {
	filter := bson.M{"userId": userID, "bookInfo": bookInfo}
	update := bson.M{"$set": bson.M{
		"shelf":     shelf,
		"updatedAt": time.Now(),
	}}
	return r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
}
