package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/event/justifications/controller"
)

func JustificationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewJustificationController(db)
	admin.Get("/justifications", ctrl.GetAllJustifications)
	admin.Post("/justifications", ctrl.CreateJustification)
	admin.Delete("/justifications/:id", ctrl.DeleteJustification)
}
