package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
)

// MockShelfRepository is an in-memory implementation of ShelfRepository.
type MockShelfRepository struct {
	entries map[string]models.Document
	mu      sync.RWMutex
}

// NewMockShelfRepository creates a new instance of MockShelfRepository.
func NewMockShelfRepository() *MockShelfRepository {
	return &MockShelfRepository{
		entries: make(map[string]models.Document),
	}
}

// Upsert writes the entry for (userId, bookInfo), inserting when absent
// and otherwise overwriting shelf and updatedAt.
func (r *MockShelfRepository) Upsert(_ context.Context, userID string, bookInfo interface{}, shelf string) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := shelfKey(userID, bookInfo)
	if entry, ok := r.entries[key]; ok {
		entry["shelf"] = shelf
		entry["updatedAt"] = time.Now()
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	id := uuid.New().String()
	r.entries[key] = models.Document{
		"_id":       id,
		"userId":    userID,
		"bookInfo":  bookInfo,
		"shelf":     shelf,
		"updatedAt": time.Now(),
	}
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil
}

// Get returns the stored entry for (userId, bookInfo), or nil. Test
// helper; there is no read endpoint for shelves.
func (r *MockShelfRepository) Get(userID string, bookInfo interface{}) models.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[shelfKey(userID, bookInfo)]
}

func shelfKey(userID string, bookInfo interface{}) string {
	return fmt.Sprintf("%s|%v", userID, bookInfo)
}
