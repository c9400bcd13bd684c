package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/users/auth/controller"
	"profoli_backend/internals/middlewares"
)

// Rotas públicas de autenticação.
func AuthRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	public.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// Rotas do painel (atualização de credenciais).
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	admin.Put("/users/:id", ctrl.UpdateUser)
}
