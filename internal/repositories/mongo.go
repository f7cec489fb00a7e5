package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookworm/internal/models"
)

// ErrGenreExists signals a case-insensitive duplicate genre name.
var ErrGenreExists = errors.New("genre already exists")

// crudRepository provides the store verbs shared by every entity
// repository over a single collection handle. Results come back as the
// driver produced them; store errors propagate unchanged.
type crudRepository struct {
	coll *mongo.Collection
}

func (r *crudRepository) insertOne(ctx context.Context, doc models.Document) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, doc)
}

func (r *crudRepository) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Document, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	docs := []models.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// findOne returns nil with no error when no document matches.
func (r *crudRepository) findOne(ctx context.Context, filter interface{}) (models.Document, error) {
	var doc models.Document
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// updateByID applies a partial merge of the given fields onto the
// identified document.
func (r *crudRepository) updateByID(ctx context.Context, id string, partial models.Document) (*mongo.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": partial})
}

func (r *crudRepository) deleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.coll.DeleteOne(ctx, bson.M{"_id": oid})
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid document id %q: %w", id, err)
	}
	return oid, nil
}
