package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookworm/internal/models"
)

// MongoReviewRepository is a MongoDB implementation of ReviewRepository.
type MongoReviewRepository struct {
	crudRepository
}

// NewMongoReviewRepository creates a new instance of MongoReviewRepository.
func NewMongoReviewRepository(coll *mongo.Collection) *MongoReviewRepository {
	return &MongoReviewRepository{crudRepository{coll: coll}}
}

// Create inserts a review document. Status and createdAt stamping is
// the review service's job; the repository stores what it is given.
func (r *MongoReviewRepository) Create(ctx context.Context, review models.Document) (*mongo.InsertOneResult, error) {
	return r.insertOne(ctx, review)
}

// ListApproved returns approved reviews for a book, newest first.
func (r *MongoReviewRepository) ListApproved(ctx context.Context, bookID string) ([]models.Document, error) {
	filter := bson.M{
		"bookId": bookID,
		"status": models.ReviewStatusApproved,
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	return r.find(ctx, filter, opts)
}
