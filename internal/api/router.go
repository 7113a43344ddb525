package api

import (
	"os"
	"path/filepath"

	"fintrack/internal/api/handlers"
	"fintrack/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

func SetupRouter(
	cfg *config.ServerConfig,
	txHandler *handlers.TransactionHandler,
	reportHandler *handlers.ReportHandler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Static dashboard
	if staticPath := findWebStaticPath(); staticPath != "" {
		appLogger.Info("Serving static files", zap.String("path", staticPath))
		app.Static("/", staticPath)
	} else {
		appLogger.Warn("Web static directory not found, dashboard will not be served")
	}

	// API routes
	tx := app.Group("/transactions")
	tx.Get("/", txHandler.List)
	tx.Post("/", txHandler.Create)
	tx.Get("/summary", reportHandler.Summary)
	tx.Get("/monthly", reportHandler.Monthly)
	tx.Get("/categories", reportHandler.Categories)
	tx.Put("/:id", txHandler.Update)
	tx.Delete("/:id", txHandler.Delete)

	return app
}

// findWebStaticPath locates the web/static directory relative to the
// working directory, which differs between `go run ./cmd/fintrack` and a
// deployed binary.
func findWebStaticPath() string {
	paths := []string{
		"./web/static",
		"../web/static",
		"../../web/static",
	}

	for _, path := range paths {
		if _, err := os.Stat(filepath.Join(path, "index.html")); err == nil {
			return path
		}
	}
	return ""
}
