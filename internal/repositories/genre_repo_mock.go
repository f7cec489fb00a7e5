package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
)

// MockGenreRepository is an in-memory implementation of GenreRepository.
type MockGenreRepository struct {
	genres map[string]models.Document
	mu     sync.RWMutex
}

// NewMockGenreRepository creates a new instance of MockGenreRepository.
func NewMockGenreRepository() *MockGenreRepository {
	return &MockGenreRepository{
		genres: make(map[string]models.Document),
	}
}

// Create stores a genre, rejecting case-insensitive duplicate names.
func (r *MockGenreRepository) Create(_ context.Context, genre models.Document) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, _ := genre["name"].(string)
	for _, existing := range r.genres {
		if existingName, _ := existing["name"].(string); strings.EqualFold(existingName, name) {
			return nil, ErrGenreExists
		}
	}

	id := uuid.New().String()
	stored := cloneDocument(genre)
	stored["_id"] = id
	r.genres[id] = stored
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

// List returns all genres sorted ascending by name.
func (r *MockGenreRepository) List(_ context.Context) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	genres := make([]models.Document, 0, len(r.genres))
	for _, genre := range r.genres {
		genres = append(genres, genre)
	}
	sort.Slice(genres, func(i, j int) bool {
		ni, _ := genres[i]["name"].(string)
		nj, _ := genres[j]["name"].(string)
		return ni < nj
	})
	return genres, nil
}

// Update merges the given fields onto an existing genre.
func (r *MockGenreRepository) Update(_ context.Context, id string, partial models.Document) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	genre, ok := r.genres[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	for k, v := range partial {
		genre[k] = v
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

// Delete removes a genre by id.
func (r *MockGenreRepository) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.genres[id]; !ok {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(r.genres, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}
