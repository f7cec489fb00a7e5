package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
)

// cloneDocument shallow-copies a document so stored state does not
// alias caller maps.
func cloneDocument(doc models.Document) models.Document {
	out := make(models.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.Document
	order []string
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.Document),
	}
}

// Create stores a new user document under a generated id.
func (r *MockUserRepository) Create(_ context.Context, user models.Document) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	stored := cloneDocument(user)
	stored["_id"] = id
	r.users[id] = stored
	r.order = append(r.order, id)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

// GetAll returns all users in insertion order.
func (r *MockUserRepository) GetAll(_ context.Context) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.Document, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	return users, nil
}

// GetByEmail returns the user with the exact email, or nil.
func (r *MockUserRepository) GetByEmail(_ context.Context, email string) (models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if e, ok := r.users[id]["email"].(string); ok && e == email {
			return r.users[id], nil
		}
	}
	return nil, nil
}
