package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Justificativa de ausência. Registro independente: não exige que exista
// linha de presença correspondente.
type JustificationModel struct {
	JustificationID         string    `gorm:"column:justification_id;primaryKey;type:uuid"`
	JustificationAttendeeID string    `gorm:"column:justification_attendee_id;type:uuid;not null"`
	JustificationThemeID    string    `gorm:"column:justification_theme_id;type:uuid;not null"`
	JustificationDate       string    `gorm:"column:justification_date;type:date;not null"`
	JustificationReason     string    `gorm:"column:justification_reason;type:text;not null"`
	JustificationCreatedAt  time.Time `gorm:"column:justification_created_at;autoCreateTime"`
}

func (JustificationModel) TableName() string {
	return "justifications"
}

func (m *JustificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.JustificationID == "" {
		m.JustificationID = uuid.NewString()
	}
	return nil
}
