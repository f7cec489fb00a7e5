package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"bookworm/internal/models"
	"bookworm/internal/repositories"
)

// GenreHandler handles HTTP requests for genres.
type GenreHandler struct {
	genreRepo repositories.GenreRepository
}

// NewGenreHandler creates a new GenreHandler.
func NewGenreHandler(genreRepo repositories.GenreRepository) *GenreHandler {
	return &GenreHandler{
		genreRepo: genreRepo,
	}
}

// RegisterRoutes registers the genre routes with the Fiber router.
func (h *GenreHandler) RegisterRoutes(router fiber.Router) {
	genres := router.Group("/genres")
	genres.Post("/", h.HandleCreateGenre)
	genres.Get("/", h.HandleListGenres)
	genres.Patch("/:id", h.HandleUpdateGenre)
	genres.Delete("/:id", h.HandleDeleteGenre)
}

// HandleCreateGenre stores a new genre, rejecting names already taken
// by a case-insensitively equal genre.
func (h *GenreHandler) HandleCreateGenre(c *fiber.Ctx) error {
	var genre models.Document
	if err := c.BodyParser(&genre); err != nil {
		log.Warnf("Error parsing genre request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if name, _ := genre["name"].(string); name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Genre name is required",
		})
	}

	result, err := h.genreRepo.Create(c.Context(), genre)
	if err != nil {
		if errors.Is(err, repositories.ErrGenreExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Genre already exists",
			})
		}
		return err
	}
	return c.JSON(result)
}

// HandleListGenres lists all genres sorted ascending by name.
func (h *GenreHandler) HandleListGenres(c *fiber.Ctx) error {
	genres, err := h.genreRepo.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(genres)
}

// HandleUpdateGenre merges the payload fields onto the identified genre.
func (h *GenreHandler) HandleUpdateGenre(c *fiber.Ctx) error {
	var partial models.Document
	if err := c.BodyParser(&partial); err != nil {
		log.Warnf("Error parsing genre update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	result, err := h.genreRepo.Update(c.Context(), c.Params("id"), partial)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// HandleDeleteGenre deletes a genre by id.
func (h *GenreHandler) HandleDeleteGenre(c *fiber.Ctx) error {
	result, err := h.genreRepo.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
