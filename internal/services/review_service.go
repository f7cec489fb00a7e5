package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"bookworm/internal/models"
	"bookworm/internal/repositories"
)

// ReviewPublisher publishes review-submitted events for the
// out-of-band moderation process.
type ReviewPublisher interface {
	PublishReviewSubmitted(review map[string]interface{}) error
}

// ReviewService handles review submission and reader-facing listing.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	publisher  ReviewPublisher
}

// NewReviewService creates a new ReviewService. publisher may be nil,
// in which case no moderation events are emitted.
func NewReviewService(reviewRepo repositories.ReviewRepository, publisher ReviewPublisher) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		publisher:  publisher,
	}
}

// Submit stamps status and createdAt over any caller-supplied values,
// stores the review, and notifies the moderation queue. A publish
// failure is logged but never fails the submission.
func (s *ReviewService) Submit(ctx context.Context, review models.Document) (*mongo.InsertOneResult, error) {
	review["status"] = models.ReviewStatusPending
	review["createdAt"] = time.Now()

	result, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishReviewSubmitted(review); err != nil {
			log.Warnf("Failed to publish review-submitted event: %v", err)
		}
	}

	return result, nil
}

// ListApproved returns approved reviews for a book, newest first.
func (s *ReviewService) ListApproved(ctx context.Context, bookID string) ([]models.Document, error) {
	return s.reviewRepo.ListApproved(ctx, bookID)
}
