package dto

// ============================
// Request DTO
// ============================

type CreateJustificationRequest struct {
	AttendeeID string `json:"attendee_id" validate:"required"`
	ThemeID    string `json:"theme_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason     string `json:"reason" validate:"required"`
}

// ============================
// Response DTO (linha já com os nomes resolvidos no JOIN)
// ============================

type JustificationDTO struct {
	ID           string `json:"id" gorm:"column:justification_id"`
	AttendeeID   string `json:"attendee_id" gorm:"column:justification_attendee_id"`
	ThemeID      string `json:"theme_id" gorm:"column:justification_theme_id"`
	Date         string `json:"date" gorm:"column:justification_date"`
	Reason       string `json:"reason" gorm:"column:justification_reason"`
	AttendeeName string `json:"attendee_name" gorm:"column:attendee_name"`
	ThemeTitle   string `json:"theme_title" gorm:"column:theme_title"`
}
