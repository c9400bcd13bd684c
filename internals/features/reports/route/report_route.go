package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/reports/controller"
)

func ReportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)
	admin.Get("/reports/attendees", ctrl.AttendeesReport)
	admin.Get("/reports/financial", ctrl.FinancialReport)
	admin.Get("/reports/attendance", ctrl.AttendanceReport)
}
