package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/event/themes/controller"
)

func ThemeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewThemeController(db)
	admin.Get("/themes", ctrl.GetAllThemes)
	admin.Post("/themes", ctrl.CreateTheme)
	admin.Put("/themes/:id", ctrl.UpdateTheme)
	admin.Delete("/themes/:id", ctrl.DeleteTheme)
}

// Listagem pública das apostilas (página de materiais).
func ThemePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewThemeController(db)
	public.Get("/public/themes", ctrl.GetAllThemes)
}
