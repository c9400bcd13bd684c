package dto

import "github.com/shopspring/decimal"

// Resumo do dashboard. Os nomes de campo são o contrato com o frontend.
type StatsDTO struct {
	TotalAttendees int64           `json:"totalAttendees"`
	PaidAttendees  int64           `json:"paidAttendees"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	RoleCounts     map[string]int  `json:"roleCounts"`
}
