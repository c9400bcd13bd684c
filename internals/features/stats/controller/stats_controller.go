package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/stats/service"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// =============================
// GET /api/stats
// =============================
func (ctrl *StatsController) GetStats(c *fiber.Ctx) error {
	stats, err := service.Collect(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(stats)
}
