package handlers

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"bookworm/internal/models"
	"bookworm/internal/repositories"
)

// BookHandler handles HTTP requests for books.
type BookHandler struct {
	bookRepo repositories.BookRepository
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(bookRepo repositories.BookRepository) *BookHandler {
	return &BookHandler{
		bookRepo: bookRepo,
	}
}

// RegisterRoutes registers the book routes with the Fiber router.
func (h *BookHandler) RegisterRoutes(router fiber.Router) {
	books := router.Group("/books")
	books.Post("/", h.HandleCreateBook)
	books.Get("/", h.HandleListBooks)
	books.Get("/:id", h.HandleGetBook)
	books.Patch("/:id", h.HandleUpdateBook)
	books.Delete("/:id", h.HandleDeleteBook)
}

// HandleCreateBook stores the raw payload as a new book.
func (h *BookHandler) HandleCreateBook(c *fiber.Ctx) error {
	var book models.Document
	if err := c.BodyParser(&book); err != nil {
		log.Warnf("Error parsing book request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	result, err := h.bookRepo.Create(c.Context(), book)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// HandleListBooks lists books, optionally filtered by a search term
// (substring of title or author, ignoring case) and an exact genre.
func (h *BookHandler) HandleListBooks(c *fiber.Ctx) error {
	books, err := h.bookRepo.List(c.Context(), c.Query("search"), c.Query("genre"))
	if err != nil {
		return err
	}
	return c.JSON(books)
}

// HandleGetBook fetches a single book; an unknown id yields null.
func (h *BookHandler) HandleGetBook(c *fiber.Ctx) error {
	book, err := h.bookRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(book)
}

// HandleUpdateBook merges the payload fields onto the identified book.
func (h *BookHandler) HandleUpdateBook(c *fiber.Ctx) error {
	var partial models.Document
	if err := c.BodyParser(&partial); err != nil {
		log.Warnf("Error parsing book update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	result, err := h.bookRepo.Update(c.Context(), c.Params("id"), partial)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// HandleDeleteBook deletes a book by id.
func (h *BookHandler) HandleDeleteBook(c *fiber.Ctx) error {
	result, err := h.bookRepo.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
