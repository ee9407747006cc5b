package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/criteria-scorer/internal/models"
)

type HealthHandler struct {
	model string
}

func NewHealthHandler(model string) *HealthHandler {
	return &HealthHandler{
		model: model,
	}
}

// HandleHealth handles GET /health
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	models.HealthResponse
//	@Router		/api/v1/health [get]
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status: "healthy",
		Model:  h.model,
		Time:   time.Now(),
	})
}
