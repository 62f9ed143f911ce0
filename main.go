package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"inductra/internal/config"
	"inductra/internal/database"
	"inductra/internal/handlers"
	"inductra/internal/mailer"
	"inductra/internal/repositories"
	"inductra/internal/services"
	"inductra/pkg/rabbitmq"
)

// App bundles the Fiber app with the resources it owns.
type App struct {
	Fiber    *fiber.App
	db       *gorm.DB
	mqClient *rabbitmq.Client
}

// NewApp wires repositories, services and handlers according to cfg.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{}

	// --- Storage ---
	var productRepo repositories.ProductRepository
	if cfg.DBDriver == config.DriverMemory {
		productRepo = repositories.NewMemoryProductRepository()
	} else {
		db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		app.db = db
		productRepo = repositories.NewGORMProductRepository(db)
	}

	if cfg.SeedCatalog {
		if err := services.SeedCatalog(context.Background(), productRepo); err != nil {
			app.Close()
			return nil, err
		}
	}

	// --- Events (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			// Events are best effort; the site keeps serving without them.
			log.Printf("RabbitMQ unavailable, continuing without events: %v", err)
		} else {
			app.mqClient = mqClient
			publisher = mqClient
		}
	} else {
		log.Println("RABBITMQ_URL not set, site events disabled")
	}

	// --- Services ---
	productService := services.NewProductService(productRepo, publisher)
	contactService := services.NewContactService(
		mailer.FromAPIKey(cfg.ResendAPIKey),
		publisher,
		cfg.ContactToEmail,
		cfg.ContactFromEmail,
	)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	contactHandler := handlers.NewContactHandler(contactService)

	f := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// --- Middleware ---
	f.Use(recover.New())
	f.Use(logger.New())
	f.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// --- API Routes ---
	api := f.Group("/api")
	productHandler.RegisterRoutes(api)
	contactHandler.RegisterRoutes(api)

	// --- Health Check Endpoint ---
	f.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"storage": cfg.DBDriver,
			"mail":    contactService.Available(),
			"events":  app.mqClient != nil,
		})
	})

	app.Fiber = f
	return app, nil
}

// Close releases the database and RabbitMQ connections.
func (a *App) Close() {
	if a.mqClient != nil {
		if err := a.mqClient.Close(); err != nil {
			log.Printf("Error closing RabbitMQ client: %v", err)
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer app.Close()

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if app.mqClient != nil {
		go func() {
			if consumerErr := app.mqClient.ConsumeEvents(rabbitmq.LogEvent); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Fiber.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Fiber.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
