package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/event/attendance/controller"
)

// Rotas do painel de chamadas. A trava de edição de sessão finalizada é o
// próprio grupo autenticado: quem chega aqui pode regravar.
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)
	admin.Get("/attendance", ctrl.GetAttendance)
	admin.Post("/attendance", ctrl.SaveAttendance)
}
