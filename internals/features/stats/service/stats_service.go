// file: internals/features/stats/service/stats_service.go
package service

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"profoli_backend/internals/constants"
	attendeeModel "profoli_backend/internals/features/event/attendees/model"
	transactionModel "profoli_backend/internals/features/finance/transactions/model"
	"profoli_backend/internals/features/stats/dto"
)

// Collect calcula o resumo do dashboard na hora, sem cache. Linear no
// número de inscritos e lançamentos, o que é folgado para a escala do
// programa (centenas de linhas).
func Collect(db *gorm.DB) (dto.StatsDTO, error) {
	stats := dto.StatsDTO{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		RoleCounts:   map[string]int{},
	}

	if err := db.Model(&attendeeModel.AttendeeModel{}).Count(&stats.TotalAttendees).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&attendeeModel.AttendeeModel{}).
		Where("attendee_payment_status = ?", constants.PaymentStatusPaid).
		Count(&stats.PaidAttendees).Error; err != nil {
		return stats, err
	}

	income, err := sumAmounts(db, constants.TransactionIncome)
	if err != nil {
		return stats, err
	}
	stats.TotalIncome = income

	expense, err := sumAmounts(db, constants.TransactionExpense)
	if err != nil {
		return stats, err
	}
	stats.TotalExpense = expense

	// frequência de cada papel entre os inscritos; linhas com conteúdo
	// ilegível (dados legados) são simplesmente puladas
	var rolesRaw []datatypes.JSON
	if err := db.Model(&attendeeModel.AttendeeModel{}).
		Pluck("attendee_roles", &rolesRaw).Error; err != nil {
		return stats, err
	}
	for _, raw := range rolesRaw {
		if len(raw) == 0 {
			continue
		}
		var roles []string
		if err := json.Unmarshal(raw, &roles); err != nil {
			continue
		}
		for _, r := range roles {
			stats.RoleCounts[r]++
		}
	}

	return stats, nil
}

func sumAmounts(db *gorm.DB, txnType string) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	if err := db.Model(&transactionModel.FinancialTransactionModel{}).
		Where("financial_transaction_type = ?", txnType).
		Pluck("financial_transaction_amount", &amounts).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total, nil
}
