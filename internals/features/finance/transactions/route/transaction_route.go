package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/finance/transactions/controller"
)

func TransactionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTransactionController(db)
	admin.Get("/financial", ctrl.GetAllTransactions)
	admin.Post("/financial", ctrl.CreateTransaction)
	admin.Delete("/financial/:id", ctrl.DeleteTransaction)
}
