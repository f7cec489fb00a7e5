package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"bookworm/internal/models"
	"bookworm/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user models.Document) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.Document, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (models.Document, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Document), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo)

	user := models.Document{"email": "reader@example.com", "password": "secret", "name": "Reader"}

	mockRepo.On("GetByEmail", mock.Anything, "reader@example.com").Return(nil, nil).Once()
	mockRepo.On("Create", mock.Anything, user).Return(&mongo.InsertOneResult{InsertedID: "user-1"}, nil).Once()

	result, err := service.Register(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, "user-1", result.InsertedID)
	// The password is hashed in place before the insert.
	hashed, _ := user["password"].(string)
	assert.NotEqual(t, "secret", hashed)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo)

	existing := models.Document{"email": "reader@example.com"}
	mockRepo.On("GetByEmail", mock.Anything, "reader@example.com").Return(existing, nil).Once()

	result, err := service.Register(context.Background(), models.Document{
		"email":    "reader@example.com",
		"password": "secret",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrUserExists)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	stored := models.Document{"email": "reader@example.com", "password": string(hashed), "name": "Reader"}

	// Successful login returns the full stored record.
	mockRepo.On("GetByEmail", mock.Anything, "reader@example.com").Return(stored, nil).Once()
	user, err := service.Login(context.Background(), "reader@example.com", "secret")
	assert.NoError(t, err)
	assert.Equal(t, stored, user)

	// Wrong password.
	mockRepo.On("GetByEmail", mock.Anything, "reader@example.com").Return(stored, nil).Once()
	user, err = service.Login(context.Background(), "reader@example.com", "wrong")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrInvalidPassword)

	// Unknown email.
	mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil).Once()
	user, err = service.Login(context.Background(), "nobody@example.com", "secret")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	mockRepo.AssertExpectations(t)
}
