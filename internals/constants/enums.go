package constants

// Situação de pagamento do inscrito
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusExempt  = "exempt"
)

// Tipo de lançamento financeiro
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Papel de usuário do painel
const (
	RoleAdmin = "admin"
)

// Situação cadastral do inscrito
const (
	AttendeeStatusActive   = "active"
	AttendeeStatusInactive = "inactive"
)

func IsValidPaymentStatus(s string) bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid || s == PaymentStatusExempt
}

func IsValidTransactionType(s string) bool {
	return s == TransactionIncome || s == TransactionExpense
}
