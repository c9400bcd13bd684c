package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/finance/payments/controller"
)

func PaymentPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)
	public.Get("/public/payment-methods", ctrl.GetPaymentMethods)
}

func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)
	admin.Put("/payment-methods", ctrl.UpdatePaymentMethods)
}
