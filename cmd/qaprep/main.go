package main

import (
	"log"

	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/HCapraz/qa-interview-prep/internal/auth"
	"github.com/HCapraz/qa-interview-prep/internal/config"
	"github.com/HCapraz/qa-interview-prep/internal/database"
	"github.com/HCapraz/qa-interview-prep/internal/handlers"
	"github.com/HCapraz/qa-interview-prep/internal/repository"
	"github.com/HCapraz/qa-interview-prep/internal/service"
)

func main() {
	// 1. Configuration and external connections
	cfg := config.Load()
	database.InitDatabases(cfg)

	// 2. Schema and category seed, idempotent, before any traffic
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if err := database.SeedCategories(database.DB); err != nil {
		log.Fatalf("Category seed failed: %v", err)
	}

	// 3. Initialize repos, services, and handlers
	userRepo := repository.NewUserRepository(database.DB)
	categoryRepo := repository.NewCategoryRepository(database.DB)
	questionRepo := repository.NewQuestionRepository(database.DB)
	attemptRepo := repository.NewAttemptRepository(database.DB)
	progressRepo := repository.NewProgressRepository(database.DB)
	guardRepo := repository.NewSubmissionGuardRepository(database.RedisClient)

	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(categoryRepo, questionRepo, cfg.ReferencesDir)
	quizService := service.NewQuizService(questionRepo, categoryRepo, attemptRepo, guardRepo)
	progressService := service.NewProgressService(categoryRepo, progressRepo)

	authn := auth.New(cfg.JWTSecret)
	webHandlers := handlers.NewWebHandlers(userService, catalogService, quizService, progressService, authn)

	// 4. Create a new Fiber instance with server-side views
	engine := html.New(cfg.ViewsDir, ".html")
	app := fiber.New(fiber.Config{
		AppName: "QAInterviewPrep_v1",
		Views:   engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			view := "errors/500"
			if code == fiber.StatusNotFound {
				view = "errors/404"
			}
			return c.Status(code).Render(view, fiber.Map{}, "layouts/main")
		},
	})

	// 5. Middleware for better observability
	app.Use(logger.New())  // Logs every request to console
	app.Use(recover.New()) // Prevents the app from crashing on panics

	// Throttle credential endpoints per IP
	authLimiter := limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				SendString("Too many requests. Please try again later.")
		},
	})
	app.Use("/login", authLimiter)
	app.Use("/register", authLimiter)

	// 6. Route Definitions
	webHandlers.RegisterRoutes(app)

	// 7. Start the server
	log.Fatal(app.Listen(cfg.ListenAddr))
}
