package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
	"bookworm/internal/services"
)

// MockReviewRepository is a mock implementation of repositories.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review models.Document) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockReviewRepository) ListApproved(ctx context.Context, bookID string) ([]models.Document, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).([]models.Document), args.Error(1)
}

// MockReviewPublisher is a mock implementation of services.ReviewPublisher
type MockReviewPublisher struct {
	mock.Mock
}

func (m *MockReviewPublisher) PublishReviewSubmitted(review map[string]interface{}) error {
	args := m.Called(review)
	return args.Error(0)
}

func TestReviewService_SubmitForcesPending(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockPublisher := new(MockReviewPublisher)
	service := services.NewReviewService(mockRepo, mockPublisher)

	// The caller tries to submit an already-approved review.
	review := models.Document{"bookId": "book-1", "rating": 5, "status": "approved", "createdAt": "bogus"}

	mockRepo.On("Create", mock.Anything, review).Return(&mongo.InsertOneResult{InsertedID: "review-1"}, nil).Once()
	mockPublisher.On("PublishReviewSubmitted", mock.Anything).Return(nil).Once()

	result, err := service.Submit(context.Background(), review)

	assert.NoError(t, err)
	assert.Equal(t, "review-1", result.InsertedID)
	assert.Equal(t, models.ReviewStatusPending, review["status"])
	_, ok := review["createdAt"].(time.Time)
	assert.True(t, ok, "createdAt must be server-stamped")
	assert.Equal(t, 5, review["rating"])
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestReviewService_SubmitWithoutPublisher(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	service := services.NewReviewService(mockRepo, nil)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(&mongo.InsertOneResult{InsertedID: "review-1"}, nil).Once()

	result, err := service.Submit(context.Background(), models.Document{"bookId": "book-1"})

	assert.NoError(t, err)
	assert.Equal(t, "review-1", result.InsertedID)
	mockRepo.AssertExpectations(t)
}

func TestReviewService_SubmitPublishFailureDoesNotFail(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockPublisher := new(MockReviewPublisher)
	service := services.NewReviewService(mockRepo, mockPublisher)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(&mongo.InsertOneResult{InsertedID: "review-1"}, nil).Once()
	mockPublisher.On("PublishReviewSubmitted", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	result, err := service.Submit(context.Background(), models.Document{"bookId": "book-1"})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestReviewService_ListApproved(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	service := services.NewReviewService(mockRepo, nil)

	expected := []models.Document{{"bookId": "book-1", "status": models.ReviewStatusApproved}}
	mockRepo.On("ListApproved", mock.Anything, "book-1").Return(expected, nil).Once()

	reviews, err := service.ListApproved(context.Background(), "book-1")

	assert.NoError(t, err)
	assert.Equal(t, expected, reviews)
	mockRepo.AssertExpectations(t)
}
