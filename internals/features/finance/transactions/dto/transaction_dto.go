package dto

import (
	"github.com/shopspring/decimal"
)

func init() {
	// valores monetários saem como número no JSON, não string
	decimal.MarshalJSONWithoutQuotes = true
}

// ============================
// Request DTO
// ============================

type CreateTransactionRequest struct {
	Type        string          `json:"type" validate:"required,oneof=income expense"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Description string          `json:"description"`
	AttendeeID  *string         `json:"attendee_id"`
	IsExempt    bool            `json:"is_exempt"`
}

// ============================
// Response DTO (linha com o nome do inscrito resolvido no JOIN)
// ============================

type TransactionDTO struct {
	ID           string          `json:"id" gorm:"column:financial_transaction_id"`
	Type         string          `json:"type" gorm:"column:financial_transaction_type"`
	Category     string          `json:"category" gorm:"column:financial_transaction_category"`
	Amount       decimal.Decimal `json:"amount" gorm:"column:financial_transaction_amount"`
	Date         string          `json:"date" gorm:"column:financial_transaction_date"`
	Description  string          `json:"description" gorm:"column:financial_transaction_description"`
	AttendeeID   *string         `json:"attendee_id" gorm:"column:financial_transaction_attendee_id"`
	AttendeeName *string         `json:"attendee_name" gorm:"column:attendee_name"`
}
