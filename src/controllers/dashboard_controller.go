package controllers

import (
	"github.com/gofiber/fiber/v2"

	"blogcms/src/models"
	"blogcms/src/services"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// GetStats returns post and comment totals plus the most popular category
func (ctl *DashboardController) GetStats(c *fiber.Ctx) error {
	stats, err := ctl.dashboard.Stats(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}
