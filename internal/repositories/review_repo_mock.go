package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
)

// MockReviewRepository is an in-memory implementation of ReviewRepository.
type MockReviewRepository struct {
	reviews map[string]models.Document
	order   []string
	mu      sync.RWMutex
}

// NewMockReviewRepository creates a new instance of MockReviewRepository.
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		reviews: make(map[string]models.Document),
	}
}

// Create stores a new review document under a generated id.
func (r *MockReviewRepository) Create(_ context.Context, review models.Document) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	stored := cloneDocument(review)
	stored["_id"] = id
	r.reviews[id] = stored
	r.order = append(r.order, id)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

// ListApproved returns approved reviews for a book, newest first.
func (r *MockReviewRepository) ListApproved(_ context.Context, bookID string) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := []models.Document{}
	for i := len(r.order) - 1; i >= 0; i-- {
		review := r.reviews[r.order[i]]
		id, _ := review["bookId"].(string)
		status, _ := review["status"].(string)
		if id == bookID && status == models.ReviewStatusApproved {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

// SetStatus changes a stored review's status, standing in for the
// out-of-band moderation process in tests.
func (r *MockReviewRepository) SetStatus(id, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if review, ok := r.reviews[id]; ok {
		review["status"] = status
	}
}
