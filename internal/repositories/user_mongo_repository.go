package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
)

// MongoUserRepository is a MongoDB implementation of UserRepository.
type MongoUserRepository struct {
	crudRepository
}

// NewMongoUserRepository creates a new instance of MongoUserRepository.
func NewMongoUserRepository(coll *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{crudRepository{coll: coll}}
}

// Create inserts a new user document, hashed password included.
func (r *MongoUserRepository) Create(ctx context.Context, user models.Document) (*mongo.InsertOneResult, error) {
	return r.insertOne(ctx, user)
}

// GetAll returns every stored user document verbatim.
func (r *MongoUserRepository) GetAll(ctx context.Context) ([]models.Document, error) {
	return r.find(ctx, bson.M{})
}

// GetByEmail returns the user with the exact email, or nil if absent.
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (models.Document, error) {
	return r.findOne(ctx, bson.M{"email": email})
}
