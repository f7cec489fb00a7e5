package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"bookworm/internal/models"
	"bookworm/internal/repositories"
	"bookworm/internal/services"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	authService *services.AuthService
	userRepo    repositories.UserRepository
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{
		authService: authService,
		userRepo:    userRepo,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber router.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Get("/", h.HandleGetUsers)
	users.Post("/", h.HandleRegister)
	users.Post("/login", h.HandleLogin)
}

// HandleGetUsers lists every stored user document verbatim.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userRepo.GetAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// HandleRegister registers a new user. The raw payload is stored as-is
// apart from the password, which is hashed before insert.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.Document
	if err := c.BodyParser(&user); err != nil {
		log.Warnf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	email, _ := user["email"].(string)
	password, _ := user["password"].(string)
	if email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email and password are required",
		})
	}

	result, err := h.authService.Register(c.Context(), user)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "User already exists",
			})
		}
		return err
	}
	return c.JSON(result)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a user. On success the full stored record
// is returned, hashed password included.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warnf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email and password are required",
		})
	}

	user, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "User not found",
			})
		case errors.Is(err, services.ErrInvalidPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid password",
			})
		}
		return err
	}

	return c.JSON(fiber.Map{
		"message":      "Login successful",
		"existingUser": user,
	})
}
