package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"catalog/internal/config"
	"catalog/internal/handlers"
	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Persistence store ---
	// DATABASE_URL selects PostgreSQL; without it the service runs on the
	// in-memory store with a couple of seeded products.
	var productRepo repositories.ProductRepository
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
			TranslateError: true,
		})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.Product{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		productRepo = repositories.NewGORMProductRepository(db)
	} else {
		memRepo := repositories.NewMemoryProductRepository()
		seedProducts(memRepo)
		productRepo = memRepo
	}

	// --- RabbitMQ client (optional) ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, product events disabled.")
	}

	// --- Services ---
	productService := services.NewProductService(productRepo, mqClient)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	verifier := services.NewStaticVerifier(cfg.AuthUsername, cfg.AuthPassword)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	authHandler := handlers.NewAuthHandler(verifier, tokenService)

	// --- Fiber app ---
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	// Login is the only anonymous endpoint.
	authHandler.RegisterRoutes(apiV1)

	// Product routes require a bearer token.
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(tokenService))
	productHandler.RegisterRoutes(protectedRoutes)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
		})
	})

	// --- Product event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for product events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received Product Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeProductEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
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

// errorHandler is the catch-all guard: any fault a handler did not map
// itself (including recovered panics) becomes a sanitized envelope instead
// of a stack trace.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}
	if code == fiber.StatusInternalServerError {
		log.Printf("Runtime Error: %v", err)
		message = "Internal server error"
	}

	return c.Status(code).JSON(models.DefaultResponse{
		Success: false,
		Code:    code,
		Error:   &models.ErrorDetail{Message: message},
	})
}

// seedProducts populates the in-memory repository with demo data.
func seedProducts(repo repositories.ProductRepository) {
	products := []models.Product{
		{StockNo: "S001", StockName: "Wireless Keyboard", Price: 49.90, Category: "Accessories"},
		{StockNo: "S002", StockName: "USB-C Dock", Price: 129.00, Category: "Accessories"},
		{StockNo: "S003", StockName: "27in Monitor", Price: 219.50, Category: "Displays"},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].StockName, err)
		} else {
			log.Printf("Seeded product: %s (ID: %d)", products[i].StockName, products[i].ID)
		}
	}
}
