package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/features/event/attendance/dto"
	"profoli_backend/internals/features/event/attendance/service"
	helper "profoli_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// =============================
// GET /api/attendance?date&theme_id
// =============================
func (ctrl *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	records, err := service.List(ctrl.DB, c.Query("date"), c.Query("theme_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	response := make([]dto.AttendanceRecordDTO, 0, len(records))
	for _, r := range records {
		response = append(response, dto.ToAttendanceRecordDTO(r))
	}
	return c.JSON(response)
}

// =============================
// POST /api/attendance
// =============================
func (ctrl *AttendanceController) SaveAttendance(c *fiber.Ctx) error {
	var body dto.ReconcileRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.Reconcile(ctrl.DB, body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonSuccess(c)
}
