package server

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/resume-summarizer/internal/config"
	"alfredoptarigan/resume-summarizer/internal/handlers"
	"alfredoptarigan/resume-summarizer/internal/models"
)

// New builds the fiber app with middleware and routes registered.
func New(
	cfg *config.Config,
	uploadHandler *handlers.UploadHandler,
	healthHandler *handlers.HealthHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:           "Resume Summarizer API",
		ReadTimeout:       30 * time.Second,
		BodyLimit:         int(cfg.Upload.MaxUploadSize),
		ErrorHandler:      errorHandler,
		EnablePrintRoutes: cfg.IsDevelopment(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: handlers.RequestIDKey,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:" + handlers.RequestIDKey + "} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	app.Get("/", healthHandler.HandleIndex)
	app.Get("/health", healthHandler.HandleHealth)
	app.Post("/upload", uploadHandler.HandleUpload)

	return app
}

// errorHandler renders every error as JSON. Fiber errors keep their status
// and message; anything else is reported without internal detail.
func errorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) && e.Code != fiber.StatusInternalServerError {
		return c.Status(e.Code).JSON(models.ErrorResponse{
			Error: e.Message,
		})
	}

	log.Printf("❌ Unhandled error on %s %s: %v\n", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.MessageResponse{
		Message: models.MessageTryAgain,
	})
}
