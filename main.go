package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tuiter/internal/handlers"
	"tuiter/internal/identifier"
	"tuiter/internal/models"
	"tuiter/internal/repositories"
	"tuiter/internal/services"
	"tuiter/pkg/rabbitmq"
)

func viperDefaults() {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("USERS_FILE", "./usuarios.json")
	viper.SetDefault("TWEETS_FILE", "./tweets.json")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()
}

func main() {
	// --- Configuration ---
	viperDefaults()

	// --- Storage ---
	userRepo, tweetRepo, err := buildRepositories()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		go consumeTweetEvents(mqClient)
	}

	app := newApp(userRepo, tweetRepo, mqClient)

	// --- Start HTTP Server ---
	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// newApp wires the services and handlers into a Fiber app. mqClient may be
// nil, in which case no events are published.
func newApp(userRepo repositories.UserRepository, tweetRepo repositories.TweetRepository, mqClient *rabbitmq.Client) *fiber.App {
	userService := services.NewUserService(userRepo)
	tweetService := services.NewTweetService(tweetRepo, mqClient)
	orderService := services.NewOrderService(mqClient)

	productHandler := handlers.NewProductHandler()
	userHandler := handlers.NewUserHandler(userService)
	tweetHandler := handlers.NewTweetHandler(tweetService)
	orderHandler := handlers.NewOrderHandler(orderService)

	app := fiber.New()
	app.Use(logger.New())

	productHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app)
	tweetHandler.RegisterRoutes(app)
	orderHandler.RegisterRoutes(app)

	app.Get("/generacion-id", func(c *fiber.Ctx) error {
		return c.JSON(identifier.New())
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

// buildRepositories selects the persistence strategy from configuration:
// flat JSON files (the original layout), a GORM-backed database, or plain
// in-memory collections.
func buildRepositories() (repositories.UserRepository, repositories.TweetRepository, error) {
	driver := viper.GetString("STORAGE_DRIVER")
	switch driver {
	case "file":
		userRepo, err := repositories.NewFileUserRepository(viper.GetString("USERS_FILE"))
		if err != nil {
			return nil, nil, err
		}
		tweetRepo, err := repositories.NewFileTweetRepository(viper.GetString("TWEETS_FILE"))
		if err != nil {
			return nil, nil, err
		}
		return userRepo, tweetRepo, nil
	case "sqlite", "postgres":
		dsn := viper.GetString("DATABASE_DSN")
		var dialector gorm.Dialector
		if driver == "sqlite" {
			dialector = sqlite.Open(dsn)
		} else {
			dialector = postgres.Open(dsn)
		}
		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(&models.UserAccount{}, &models.Tweet{}); err != nil {
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return repositories.NewGORMUserRepository(db), repositories.NewGORMTweetRepository(db), nil
	case "memory":
		return repositories.NewMockUserRepository(), repositories.NewMockTweetRepository(), nil
	default:
		return nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}

// consumeTweetEvents logs tweet events published by the app itself. It stands
// in for downstream consumers such as a notification service.
func consumeTweetEvents(client *rabbitmq.Client) {
	log.Println("Starting RabbitMQ consumer for tweet events...")
	err := client.Consume(rabbitmq.TweetQueue, func(msg amqp.Delivery) error {
		log.Printf("Received tweet event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
		return nil
	})
	if err != nil {
		log.Printf("Failed to start RabbitMQ consumer: %v", err)
	}
}
