package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/finance/transactions/dto"
	"profoli_backend/internals/features/finance/transactions/model"
	"profoli_backend/internals/features/finance/transactions/service"
	helper "profoli_backend/internals/helpers"
)

var validate = validator.New()

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

// =============================
// GET /api/financial
// =============================
func (ctrl *TransactionController) GetAllTransactions(c *fiber.Ctx) error {
	rows, err := service.List(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(rows)
}

// =============================
// POST /api/financial
// =============================
func (ctrl *TransactionController) CreateTransaction(c *fiber.Ctx) error {
	var body dto.CreateTransactionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	id, err := service.Record(ctrl.DB, body)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonID(c, id)
}

// =============================
// DELETE /api/financial/:id
// =============================
// Remove só o lançamento. A situação de pagamento do inscrito não volta
// atrás (propagação de mão única).
func (ctrl *TransactionController) DeleteTransaction(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Delete(&model.FinancialTransactionModel{}, "financial_transaction_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonSuccess(c)
}
