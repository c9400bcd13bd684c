package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/event/justifications/dto"
	"profoli_backend/internals/features/event/justifications/model"
	helper "profoli_backend/internals/helpers"
)

var validate = validator.New()

type JustificationController struct {
	DB *gorm.DB
}

func NewJustificationController(db *gorm.DB) *JustificationController {
	return &JustificationController{DB: db}
}

// =============================
// GET /api/justifications
// =============================
func (ctrl *JustificationController) GetAllJustifications(c *fiber.Ctx) error {
	rows := make([]dto.JustificationDTO, 0)
	err := ctrl.DB.Table("justifications").
		Select("justifications.*, attendees.attendee_name AS attendee_name, themes.theme_title AS theme_title").
		Joins("LEFT JOIN attendees ON attendees.attendee_id = justifications.justification_attendee_id").
		Joins("LEFT JOIN themes ON themes.theme_id = justifications.justification_theme_id").
		Order("justifications.justification_date DESC").
		Order("justifications.justification_created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(rows)
}

// =============================
// POST /api/justifications
// =============================
func (ctrl *JustificationController) CreateJustification(c *fiber.Ctx) error {
	var body dto.CreateJustificationRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	justification := model.JustificationModel{
		JustificationAttendeeID: body.AttendeeID,
		JustificationThemeID:    body.ThemeID,
		JustificationDate:       body.Date,
		JustificationReason:     body.Reason,
	}
	if err := ctrl.DB.Create(&justification).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonID(c, justification.JustificationID)
}

// =============================
// DELETE /api/justifications/:id
// =============================
func (ctrl *JustificationController) DeleteJustification(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Delete(&model.JustificationModel{}, "justification_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonSuccess(c)
}
