package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
)

// MockTutorialRepository is an in-memory implementation of TutorialRepository.
type MockTutorialRepository struct {
	tutorials map[string]models.Document
	order     []string
	mu        sync.RWMutex
}

// NewMockTutorialRepository creates a new instance of MockTutorialRepository.
func NewMockTutorialRepository() *MockTutorialRepository {
	return &MockTutorialRepository{
		tutorials: make(map[string]models.Document),
	}
}

// Create stores a new tutorial document under a generated id.
func (r *MockTutorialRepository) Create(_ context.Context, tutorial models.Document) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	stored := cloneDocument(tutorial)
	stored["_id"] = id
	r.tutorials[id] = stored
	r.order = append(r.order, id)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

// List returns tutorials in reverse-insertion order, newest first.
func (r *MockTutorialRepository) List(_ context.Context) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tutorials := make([]models.Document, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		tutorials = append(tutorials, r.tutorials[r.order[i]])
	}
	return tutorials, nil
}

// Delete removes a tutorial by id; a missing id yields a zero count.
func (r *MockTutorialRepository) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tutorials[id]; !ok {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(r.tutorials, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}
