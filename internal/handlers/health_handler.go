package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-summarizer/internal/models"
)

type HealthHandler struct {
	modelName string
}

func NewHealthHandler(modelName string) *HealthHandler {
	return &HealthHandler{modelName: modelName}
}

// HandleHealth handles GET /health
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleIndex handles GET /
func (h *HealthHandler) HandleIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Resume Summarizer API",
		"version": "1.0.0",
		"model":   h.modelName,
		"endpoints": []string{
			"POST /upload",
			"GET /health",
		},
	})
}
