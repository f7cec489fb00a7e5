package handlers

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"bookworm/internal/models"
	"bookworm/internal/repositories"
)

// TutorialHandler handles HTTP requests for tutorials.
type TutorialHandler struct {
	tutorialRepo repositories.TutorialRepository
}

// NewTutorialHandler creates a new TutorialHandler.
func NewTutorialHandler(tutorialRepo repositories.TutorialRepository) *TutorialHandler {
	return &TutorialHandler{
		tutorialRepo: tutorialRepo,
	}
}

// RegisterRoutes registers the tutorial routes with the Fiber router.
func (h *TutorialHandler) RegisterRoutes(router fiber.Router) {
	tutorials := router.Group("/tutorials")
	tutorials.Get("/", h.HandleListTutorials)
	tutorials.Post("/", h.HandleCreateTutorial)
	tutorials.Delete("/:id", h.HandleDeleteTutorial)
}

// HandleListTutorials lists tutorials newest first.
func (h *TutorialHandler) HandleListTutorials(c *fiber.Ctx) error {
	tutorials, err := h.tutorialRepo.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(tutorials)
}

// HandleCreateTutorial stores the raw payload as a new tutorial.
func (h *TutorialHandler) HandleCreateTutorial(c *fiber.Ctx) error {
	var tutorial models.Document
	if err := c.BodyParser(&tutorial); err != nil {
		log.Warnf("Error parsing tutorial request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	result, err := h.tutorialRepo.Create(c.Context(), tutorial)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// HandleDeleteTutorial deletes a tutorial by id.
func (h *TutorialHandler) HandleDeleteTutorial(c *fiber.Ctx) error {
	result, err := h.tutorialRepo.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
