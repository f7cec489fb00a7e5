package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"bookworm/internal/handlers"
	"bookworm/internal/models"
	"bookworm/internal/repositories"
	"bookworm/internal/services"
	"bookworm/pkg/mongodb"
	"bookworm/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// A .env file is optional; real deployments set the environment
	// directly.
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found")
	}
	viper.SetDefault("PORT", "2000")
	viper.AutomaticEnv()

	port := viper.GetString("PORT")
	dbURI := viper.GetString("DB_URI")
	if dbURI == "" {
		log.Fatal("DB_URI is required")
	}

	// --- Initialize MongoDB Client ---
	// One client for the whole process; an unreachable store aborts
	// startup.
	store, err := mongodb.New(mongodb.Config{URI: dbURI})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	// Without a broker URL, review-moderation events are disabled.
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(store.Collection(models.UsersCollection))
	bookRepo := repositories.NewMongoBookRepository(store.Collection(models.BooksCollection))
	genreRepo := repositories.NewMongoGenreRepository(store.Collection(models.GenresCollection))
	tutorialRepo := repositories.NewMongoTutorialRepository(store.Collection(models.TutorialsCollection))
	shelfRepo := repositories.NewMongoShelfRepository(store.Collection(models.ShelvesCollection))
	reviewRepo := repositories.NewMongoReviewRepository(store.Collection(models.ReviewsCollection))

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo)
	var publisher services.ReviewPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	reviewService := services.NewReviewService(reviewRepo, publisher)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(cors.New())

	// --- API Routes ---
	api := app.Group("/api")
	api.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello World!")
	})

	handlers.NewUserHandler(authService, userRepo).RegisterRoutes(api)
	handlers.NewBookHandler(bookRepo).RegisterRoutes(api)
	handlers.NewGenreHandler(genreRepo).RegisterRoutes(api)
	handlers.NewTutorialHandler(tutorialRepo).RegisterRoutes(api)
	handlers.NewShelfHandler(shelfRepo).RegisterRoutes(api)
	handlers.NewReviewHandler(reviewService).RegisterRoutes(api)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("Starting server on port %s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during Fiber shutdown: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		log.Errorf("Error closing MongoDB client: %v", err)
	}
	if mqClient != nil {
		if err := mqClient.Close(); err != nil {
			log.Errorf("Error closing RabbitMQ client: %v", err)
		}
	}
	log.Info("Server gracefully stopped")
}
