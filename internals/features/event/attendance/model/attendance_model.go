package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Uma linha por inscrito por sessão (data + tema). O índice único composto
// é o que permite o upsert do reconciler.
type AttendanceModel struct {
	AttendanceID         string `gorm:"column:attendance_id;primaryKey;type:uuid"`
	AttendanceAttendeeID string `gorm:"column:attendance_attendee_id;type:uuid;not null;uniqueIndex:uq_attendance_session"`
	AttendanceDate       string `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_session"`
	AttendanceThemeID    string `gorm:"column:attendance_theme_id;type:uuid;not null;uniqueIndex:uq_attendance_session"`
	AttendancePresent    bool   `gorm:"column:attendance_present;not null;default:false"`
	AttendanceFinalized  bool   `gorm:"column:attendance_finalized;not null;default:false"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == "" {
		m.AttendanceID = uuid.NewString()
	}
	return nil
}
