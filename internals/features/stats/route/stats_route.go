package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/stats/controller"
)

func StatsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStatsController(db)
	admin.Get("/stats", ctrl.GetStats)
}
