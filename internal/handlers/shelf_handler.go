package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"bookworm/internal/repositories"
)

// ShelfHandler handles HTTP requests for reading shelves.
type ShelfHandler struct {
	shelfRepo repositories.ShelfRepository
	validate  *validator.Validate
}

// NewShelfHandler creates a new ShelfHandler.
func NewShelfHandler(shelfRepo repositories.ShelfRepository) *ShelfHandler {
	return &ShelfHandler{
		shelfRepo: shelfRepo,
		validate:  validator.New(),
	}
}

// RegisterRoutes registers the shelf routes with the Fiber router.
func (h *ShelfHandler) RegisterRoutes(router fiber.Router) {
	shelves := router.Group("/shelves")
	shelves.Post("/", h.HandleUpsertShelf)
}

// ShelfRequest represents the request body for a shelf write. bookInfo
// is opaque; together with userId it identifies the entry.
type ShelfRequest struct {
	UserID   string      `json:"userId" validate:"required"`
	BookInfo interface{} `json:"bookInfo" validate:"required"`
	Shelf    string      `json:"shelf" validate:"required"`
}

// HandleUpsertShelf creates or overwrites the shelf entry for
// (userId, bookInfo).
func (h *ShelfHandler) HandleUpsertShelf(c *fiber.Ctx) error {
	var req ShelfRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warnf("Error parsing shelf request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "userId, bookInfo and shelf are required",
		})
	}

	result, err := h.shelfRepo.Upsert(c.Context(), req.UserID, req.BookInfo, req.Shelf)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
