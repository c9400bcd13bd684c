package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "profoli_backend/internals/features/event/attendance/model"
	"profoli_backend/internals/features/event/attendees/dto"
	"profoli_backend/internals/features/event/attendees/model"
	justificationModel "profoli_backend/internals/features/event/justifications/model"
	helper "profoli_backend/internals/helpers"
)

var validate = validator.New()

const (
	msgCPFCadastrado = "Este CPF já está cadastrado no sistema."
	msgCPFDeOutro    = "Este CPF já pertence a outro inscrito."
)

type AttendeeController struct {
	DB *gorm.DB
}

func NewAttendeeController(db *gorm.DB) *AttendeeController {
	return &AttendeeController{DB: db}
}

// =============================
// POST /api/attendees (inscrição pública)
// =============================
func (ctrl *AttendeeController) CreateAttendee(c *fiber.Ctx) error {
	var body dto.CreateAttendeeRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	cpfDigits := helper.NormalizeCPF(body.CPF)
	if !helper.IsCPFShaped(cpfDigits) {
		return fiber.NewError(fiber.StatusBadRequest, "CPF inválido.")
	}

	var existing model.AttendeeModel
	err := ctrl.DB.First(&existing, "attendee_cpf = ?", cpfDigits).Error
	if err == nil {
		return fiber.NewError(fiber.StatusBadRequest, msgCPFCadastrado)
	} else if err != gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	attendee := model.AttendeeModel{
		AttendeeName:   body.Name,
		AttendeeCPF:    cpfDigits,
		AttendeeRoles:  dto.MarshalRoles(body.Roles),
		AttendeeChurch: body.Church,
		AttendeePhone:  body.Phone,
	}
	if err := ctrl.DB.Create(&attendee).Error; err != nil {
		// duas inscrições simultâneas podem passar pelo SELECT e colidir aqui
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, msgCPFCadastrado)
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonID(c, attendee.AttendeeID)
}

// =============================
// GET /api/attendees
// =============================
func (ctrl *AttendeeController) GetAllAttendees(c *fiber.Ctx) error {
	var attendees []model.AttendeeModel
	if err := ctrl.DB.Order("attendee_name").Find(&attendees).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	response := make([]dto.AttendeeDTO, 0, len(attendees))
	for _, a := range attendees {
		response = append(response, dto.ToAttendeeDTO(a))
	}
	return c.JSON(response)
}

// =============================
// PUT /api/attendees/:id
// =============================
func (ctrl *AttendeeController) UpdateAttendee(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateAttendeeRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	var attendee model.AttendeeModel
	if err := ctrl.DB.First(&attendee, "attendee_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Inscrito não encontrado")
	}

	if body.CPF != "" {
		cpfDigits := helper.NormalizeCPF(body.CPF)
		if !helper.IsCPFShaped(cpfDigits) {
			return fiber.NewError(fiber.StatusBadRequest, "CPF inválido.")
		}
		var other model.AttendeeModel
		err := ctrl.DB.First(&other, "attendee_cpf = ? AND attendee_id <> ?", cpfDigits, id).Error
		if err == nil {
			return fiber.NewError(fiber.StatusBadRequest, msgCPFDeOutro)
		} else if err != gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		attendee.AttendeeCPF = cpfDigits
	}

	if body.Name != "" {
		attendee.AttendeeName = body.Name
	}
	if body.Roles != nil {
		attendee.AttendeeRoles = dto.MarshalRoles(*body.Roles)
	}
	if body.Church != "" {
		attendee.AttendeeChurch = body.Church
	}
	if body.Phone != "" {
		attendee.AttendeePhone = body.Phone
	}
	if body.Status != "" {
		attendee.AttendeeStatus = body.Status
	}
	if body.PaymentStatus != "" {
		attendee.AttendeePaymentStatus = body.PaymentStatus
	}

	if err := ctrl.DB.Save(&attendee).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, msgCPFDeOutro)
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonSuccess(c)
}

// =============================
// DELETE /api/attendees/:id
// =============================
// Remove o inscrito e tudo que depende dele: presenças e justificativas vão
// junto, lançamentos financeiros ficam com a referência anulada.
func (ctrl *AttendeeController) DeleteAttendee(c *fiber.Ctx) error {
	id := c.Params("id")

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&attendanceModel.AttendanceModel{}, "attendance_attendee_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&justificationModel.JustificationModel{}, "justification_attendee_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Table("financial_transactions").
			Where("financial_transaction_attendee_id = ?", id).
			Update("financial_transaction_attendee_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.AttendeeModel{}, "attendee_id = ?", id).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonSuccess(c)
}

// =============================
// GET /api/public/status/:cpf
// =============================
func (ctrl *AttendeeController) PublicStatus(c *fiber.Ctx) error {
	cpfDigits := helper.NormalizeCPF(c.Params("cpf"))

	var attendee model.AttendeeModel
	if err := ctrl.DB.First(&attendee, "attendee_cpf = ?", cpfDigits).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Inscrito não encontrado")
	}
	return c.JSON(dto.ToPublicStatusDTO(attendee))
}
