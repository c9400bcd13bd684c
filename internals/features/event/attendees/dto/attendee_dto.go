package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"profoli_backend/internals/features/event/attendees/model"
)

// ============================
// Response DTOs
// ============================

type AttendeeDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CPF           string    `json:"cpf"`
	Roles         []string  `json:"roles"`
	Church        string    `json:"church"`
	Phone         string    `json:"phone"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

type PublicStatusDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CPF           string `json:"cpf"`
	PaymentStatus string `json:"payment_status"`
}

// ============================
// Request DTOs
// ============================

type CreateAttendeeRequest struct {
	Name   string   `json:"name" validate:"required,min=3"`
	CPF    string   `json:"cpf" validate:"required"`
	Roles  []string `json:"roles"`
	Church string   `json:"church"`
	Phone  string   `json:"phone"`
}

type UpdateAttendeeRequest struct {
	Name          string    `json:"name"`
	CPF           string    `json:"cpf"`
	Roles         *[]string `json:"roles"`
	Church        string    `json:"church"`
	Phone         string    `json:"phone"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
}

// ============================
// Converters
// ============================

func ToAttendeeDTO(m model.AttendeeModel) AttendeeDTO {
	return AttendeeDTO{
		ID:            m.AttendeeID,
		Name:          m.AttendeeName,
		CPF:           m.AttendeeCPF,
		Roles:         ParseRoles(m.AttendeeRoles),
		Church:        m.AttendeeChurch,
		Phone:         m.AttendeePhone,
		Status:        m.AttendeeStatus,
		PaymentStatus: m.AttendeePaymentStatus,
		CreatedAt:     m.AttendeeCreatedAt,
	}
}

func ToPublicStatusDTO(m model.AttendeeModel) PublicStatusDTO {
	return PublicStatusDTO{
		ID:            m.AttendeeID,
		Name:          m.AttendeeName,
		CPF:           m.AttendeeCPF,
		PaymentStatus: m.AttendeePaymentStatus,
	}
}

// ParseRoles decodifica a coluna de papéis. Linhas legadas com conteúdo
// inválido viram lista vazia em vez de erro.
func ParseRoles(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var roles []string
	if err := json.Unmarshal(raw, &roles); err != nil {
		return []string{}
	}
	return roles
}

func MarshalRoles(roles []string) datatypes.JSON {
	if roles == nil {
		roles = []string{}
	}
	raw, _ := json.Marshal(roles)
	return datatypes.JSON(raw)
}
