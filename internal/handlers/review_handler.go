package handlers

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"bookworm/internal/models"
	"bookworm/internal/services"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// RegisterRoutes registers the review routes with the Fiber router.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviews := router.Group("/reviews")
	reviews.Post("/", h.HandleSubmitReview)
	reviews.Get("/:bookId", h.HandleListReviews)
}

// HandleSubmitReview stores a review. Status and createdAt are stamped
// by the service regardless of what the caller sent.
func (h *ReviewHandler) HandleSubmitReview(c *fiber.Ctx) error {
	var review models.Document
	if err := c.BodyParser(&review); err != nil {
		log.Warnf("Error parsing review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	result, err := h.reviewService.Submit(c.Context(), review)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// HandleListReviews lists approved reviews for a book, newest first.
func (h *ReviewHandler) HandleListReviews(c *fiber.Ctx) error {
	reviews, err := h.reviewService.ListApproved(c.Context(), c.Params("bookId"))
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}
