package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/event/attendees/controller"
)

// Rotas públicas: auto-inscrição e consulta de situação por CPF.
func AttendeePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendeeController(db)
	public.Post("/attendees", ctrl.CreateAttendee)
	public.Get("/public/status/:cpf", ctrl.PublicStatus)
}

// Rotas do painel: listagem e manutenção dos inscritos.
func AttendeeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendeeController(db)
	admin.Get("/attendees", ctrl.GetAllAttendees)
	admin.Put("/attendees/:id", ctrl.UpdateAttendee)
	admin.Delete("/attendees/:id", ctrl.DeleteAttendee)
}
