package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"veridian/portfolio-api/internal/config"
)

type Handlers struct {
	Portfolio *PortfolioHandler
	Match     *MatchHandler
	Contact   *ContactHandler
}

// NewApp builds the Fiber app with middleware and every route registered.
func NewApp(cfg config.ServerConfig, h Handlers, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Portfolio API",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/portfolio", h.Portfolio.HandleGetPortfolio)
	api.Post("/projects/match", h.Match.HandleMatch)
	api.Post("/projects/suggest", h.Match.HandleSuggest)
	api.Post("/projects/suggest/resume", h.Match.HandleSuggestFromResume)
	api.Post("/contact", h.Contact.HandleSubmit)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Portfolio API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/portfolio",
				"POST /api/v1/projects/match",
				"POST /api/v1/projects/suggest",
				"POST /api/v1/projects/suggest/resume",
				"POST /api/v1/contact",
			},
		})
	})

	return app
}
