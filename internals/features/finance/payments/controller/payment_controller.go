package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/configs"
	"profoli_backend/internals/features/finance/payments/dto"
	"profoli_backend/internals/features/finance/payments/model"
	"profoli_backend/internals/features/finance/payments/service"
	helper "profoli_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// =============================
// GET /api/public/payment-methods
// =============================
// Sem linha gravada, cai nos valores do ambiente (PIX_KEY etc.).
func (ctrl *PaymentController) GetPaymentMethods(c *fiber.Ctx) error {
	setting := model.PaymentSettingModel{
		PaymentSettingPixKey: configs.PixKey,
		PaymentSettingHolder: configs.PixHolder,
		PaymentSettingCity:   configs.PixCity,
	}
	var stored model.PaymentSettingModel
	if err := ctrl.DB.First(&stored).Error; err == nil {
		setting = stored
	}

	return c.JSON(dto.PaymentMethodsDTO{
		PixKey:  setting.PaymentSettingPixKey,
		Holder:  setting.PaymentSettingHolder,
		City:    setting.PaymentSettingCity,
		Payload: service.BuildPixPayload(setting.PaymentSettingPixKey, setting.PaymentSettingHolder, setting.PaymentSettingCity),
	})
}

// =============================
// PUT /api/payment-methods
// =============================
func (ctrl *PaymentController) UpdatePaymentMethods(c *fiber.Ctx) error {
	var body dto.UpdatePaymentMethodsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var setting model.PaymentSettingModel
	err := ctrl.DB.First(&setting).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	setting.PaymentSettingPixKey = body.PixKey
	setting.PaymentSettingHolder = body.Holder
	setting.PaymentSettingCity = body.City

	if err := ctrl.DB.Save(&setting).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonSuccess(c)
}
