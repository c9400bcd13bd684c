package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Lançamento do livro-caixa. Append-only: edição não existe, só remoção.
type FinancialTransactionModel struct {
	FinancialTransactionID          string          `gorm:"column:financial_transaction_id;primaryKey;type:uuid"`
	FinancialTransactionType        string          `gorm:"column:financial_transaction_type;type:varchar(10);not null"`
	FinancialTransactionCategory    string          `gorm:"column:financial_transaction_category;type:varchar(60)"`
	FinancialTransactionAmount      decimal.Decimal `gorm:"column:financial_transaction_amount;type:numeric(12,2);not null"`
	FinancialTransactionDate        string          `gorm:"column:financial_transaction_date;type:date;not null"`
	FinancialTransactionDescription string          `gorm:"column:financial_transaction_description;type:text"`
	FinancialTransactionAttendeeID  *string         `gorm:"column:financial_transaction_attendee_id;type:uuid"`
	FinancialTransactionCreatedAt   time.Time       `gorm:"column:financial_transaction_created_at;autoCreateTime"`
}

func (FinancialTransactionModel) TableName() string {
	return "financial_transactions"
}

func (m *FinancialTransactionModel) BeforeCreate(tx *gorm.DB) error {
	if m.FinancialTransactionID == "" {
		m.FinancialTransactionID = uuid.NewString()
	}
	return nil
}
