package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttendeeModel struct {
	AttendeeID   string `gorm:"column:attendee_id;primaryKey;type:uuid"`
	AttendeeName string `gorm:"column:attendee_name;type:varchar(120);not null"`
	// CPF sempre gravado normalizado (só dígitos)
	AttendeeCPF           string         `gorm:"column:attendee_cpf;type:varchar(11);uniqueIndex;not null"`
	AttendeeRoles         datatypes.JSON `gorm:"column:attendee_roles;type:jsonb"`
	AttendeeChurch        string         `gorm:"column:attendee_church;type:varchar(120)"`
	AttendeePhone         string         `gorm:"column:attendee_phone;type:varchar(30)"`
	AttendeeStatus        string         `gorm:"column:attendee_status;type:varchar(20);not null;default:active"`
	AttendeePaymentStatus string         `gorm:"column:attendee_payment_status;type:varchar(20);not null;default:pending"`
	AttendeeCreatedAt     time.Time      `gorm:"column:attendee_created_at;autoCreateTime"`
}

func (AttendeeModel) TableName() string {
	return "attendees"
}

func (m *AttendeeModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendeeID == "" {
		m.AttendeeID = uuid.NewString()
	}
	return nil
}
