package dto

import "profoli_backend/internals/features/event/attendance/model"

// ============================
// Request DTOs
// ============================

type ReconcileRecordInput struct {
	AttendeeID string `json:"attendee_id" validate:"required"`
	Present    bool   `json:"present"`
}

type ReconcileRequest struct {
	Date      string                 `json:"date" validate:"required,datetime=2006-01-02"`
	ThemeID   string                 `json:"theme_id" validate:"required"`
	Records   []ReconcileRecordInput `json:"records" validate:"required,dive"`
	Finalized bool                   `json:"finalized"`
}

// ============================
// Response DTO
// ============================

type AttendanceRecordDTO struct {
	ID         string `json:"id"`
	AttendeeID string `json:"attendee_id"`
	Date       string `json:"date"`
	ThemeID    string `json:"theme_id"`
	Present    bool   `json:"present"`
	Finalized  bool   `json:"finalized"`
}

func ToAttendanceRecordDTO(m model.AttendanceModel) AttendanceRecordDTO {
	return AttendanceRecordDTO{
		ID:         m.AttendanceID,
		AttendeeID: m.AttendanceAttendeeID,
		Date:       m.AttendanceDate,
		ThemeID:    m.AttendanceThemeID,
		Present:    m.AttendancePresent,
		Finalized:  m.AttendanceFinalized,
	}
}
