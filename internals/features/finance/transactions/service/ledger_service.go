// file: internals/features/finance/transactions/service/ledger_service.go
package service

import (
	"errors"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"profoli_backend/internals/constants"
	"profoli_backend/internals/features/finance/transactions/dto"
	"profoli_backend/internals/features/finance/transactions/model"
)

var ErrNegativeAmount = errors.New("Valor não pode ser negativo.")

const exemptTag = "[Isento]"

// Record insere o lançamento e, quando é uma receita ligada a um inscrito,
// propaga a situação de pagamento dele (paid, ou exempt se isento).
//
// A propagação é de mão única e sem compensação: se o UPDATE do inscrito
// falhar depois do INSERT do lançamento, o lançamento fica — o operador
// corrige pelo painel. Remover o lançamento depois também não desfaz a
// situação do inscrito.
func Record(db *gorm.DB, req dto.CreateTransactionRequest) (string, error) {
	amount := req.Amount
	description := req.Description

	// isenção manda: zera o valor informado e marca a descrição
	if req.IsExempt {
		amount = decimal.Zero
		if !strings.Contains(description, exemptTag) {
			description = strings.TrimSpace(exemptTag + " " + description)
		}
	}

	if amount.IsNegative() {
		return "", ErrNegativeAmount
	}

	txn := model.FinancialTransactionModel{
		FinancialTransactionType:        req.Type,
		FinancialTransactionCategory:    req.Category,
		FinancialTransactionAmount:      amount,
		FinancialTransactionDate:        req.Date,
		FinancialTransactionDescription: description,
		FinancialTransactionAttendeeID:  req.AttendeeID,
	}
	if err := db.Create(&txn).Error; err != nil {
		return "", err
	}

	if req.Type == constants.TransactionIncome && req.AttendeeID != nil && *req.AttendeeID != "" {
		status := constants.PaymentStatusPaid
		if req.IsExempt {
			status = constants.PaymentStatusExempt
		}
		if err := db.Table("attendees").
			Where("attendee_id = ?", *req.AttendeeID).
			Update("attendee_payment_status", status).Error; err != nil {
			log.Printf("[FINANCE] lançamento %s gravado mas situação do inscrito %s não propagou: %v",
				txn.FinancialTransactionID, *req.AttendeeID, err)
		}
	}

	return txn.FinancialTransactionID, nil
}

// List devolve os lançamentos com o nome do inscrito, mais novos primeiro.
func List(db *gorm.DB) ([]dto.TransactionDTO, error) {
	rows := make([]dto.TransactionDTO, 0)
	err := db.Table("financial_transactions").
		Select("financial_transactions.*, attendees.attendee_name AS attendee_name").
		Joins("LEFT JOIN attendees ON attendees.attendee_id = financial_transactions.financial_transaction_attendee_id").
		Order("financial_transactions.financial_transaction_date DESC").
		Order("financial_transactions.financial_transaction_created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
