package repositories

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
)

// MockBookRepository is an in-memory implementation of BookRepository.
type MockBookRepository struct {
	books map[string]models.Document
	order []string
	mu    sync.RWMutex
}

// NewMockBookRepository creates a new instance of MockBookRepository.
func NewMockBookRepository() *MockBookRepository {
	return &MockBookRepository{
		books: make(map[string]models.Document),
	}
}

// Create stores a new book document under a generated id.
func (r *MockBookRepository) Create(_ context.Context, book models.Document) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	stored := cloneDocument(book)
	stored["_id"] = id
	r.books[id] = stored
	r.order = append(r.order, id)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

// List filters books the same way the store filter does: substring
// match on title or author ignoring case, exact genre match.
func (r *MockBookRepository) List(_ context.Context, search, genre string) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := []models.Document{}
	for _, id := range r.order {
		book := r.books[id]
		if search != "" && !matchesSearch(book, search) {
			continue
		}
		if genre != "" {
			if g, _ := book["genre"].(string); g != genre {
				continue
			}
		}
		books = append(books, book)
	}
	return books, nil
}

// GetByID returns a book by id, or nil if absent.
func (r *MockBookRepository) GetByID(_ context.Context, id string) (models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	if !ok {
		return nil, nil
	}
	return book, nil
}

// Update merges the given fields onto an existing book.
func (r *MockBookRepository) Update(_ context.Context, id string, partial models.Document) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	for k, v := range partial {
		book[k] = v
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

// Delete removes a book by id; a missing id yields a zero count.
func (r *MockBookRepository) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(r.books, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func matchesSearch(book models.Document, search string) bool {
	search = strings.ToLower(search)
	if title, _ := book["title"].(string); strings.Contains(strings.ToLower(title), search) {
		return true
	}
	if author, _ := book["author"].(string); strings.Contains(strings.ToLower(author), search) {
		return true
	}
	return false
}
