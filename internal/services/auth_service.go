package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"bookworm/internal/models"
	"bookworm/internal/repositories"
)

// Business-rule signals surfaced to callers as 400 responses.
var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// AuthService handles registration and credential verification.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register hashes the password in place, checks for an existing user
// with the same email, and inserts. The check and the insert are two
// separate store operations; concurrent registrations of the same email
// can race past the check.
func (s *AuthService) Register(ctx context.Context, user models.Document) (*mongo.InsertOneResult, error) {
	password, _ := user["password"].(string)
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user["password"] = string(hashed)

	email, _ := user["email"].(string)
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	return s.userRepo.Create(ctx, user)
}

// Login looks the user up by exact email and verifies the password
// against the stored hash. On success it returns the full stored
// document, hashed password included.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.Document, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	hashed, _ := user["password"].(string)
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return user, nil
}
