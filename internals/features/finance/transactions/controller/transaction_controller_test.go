package controller_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	attendeeModel "profoli_backend/internals/features/event/attendees/model"
	"profoli_backend/internals/features/finance/transactions/dto"
	transactionModel "profoli_backend/internals/features/finance/transactions/model"
	"profoli_backend/internals/testutils"
)

func seedAttendee(t *testing.T, db *gorm.DB, cpf string) attendeeModel.AttendeeModel {
	t.Helper()
	a := attendeeModel.AttendeeModel{
		AttendeeName:          "Inscrito Teste",
		AttendeeCPF:           cpf,
		AttendeeStatus:        "active",
		AttendeePaymentStatus: "pending",
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func paymentStatusOf(t *testing.T, db *gorm.DB, id string) string {
	t.Helper()
	var a attendeeModel.AttendeeModel
	require.NoError(t, db.First(&a, "attendee_id = ?", id).Error)
	return a.AttendeePaymentStatus
}

func TestIncomeMarksAttendeePaid(t *testing.T) {
	db := testutils.OpenDB(t)
	_, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)
	attendee := seedAttendee(t, db, "11122233344")

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/financial", dto.CreateTransactionRequest{
		Type:       "income",
		Category:   "Inscrição",
		Amount:     decimal.NewFromInt(50),
		Date:       "2026-03-07",
		AttendeeID: &attendee.AttendeeID,
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "paid", paymentStatusOf(t, db, attendee.AttendeeID))
}

func TestExemptOverridesAmount(t *testing.T) {
	db := testutils.OpenDB(t)
	_, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)
	attendee := seedAttendee(t, db, "55566677788")

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/financial", dto.CreateTransactionRequest{
		Type:       "income",
		Category:   "Inscrição",
		Amount:     decimal.NewFromInt(50), // valor informado é ignorado
		Date:       "2026-03-07",
		AttendeeID: &attendee.AttendeeID,
		IsExempt:   true,
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created map[string]string
	testutils.DecodeBody(t, resp, &created)

	var txn transactionModel.FinancialTransactionModel
	require.NoError(t, db.First(&txn, "financial_transaction_id = ?", created["id"]).Error)
	assert.True(t, txn.FinancialTransactionAmount.IsZero(), "isenção deve zerar o valor")
	assert.Contains(t, txn.FinancialTransactionDescription, "[Isento]")

	assert.Equal(t, "exempt", paymentStatusOf(t, db, attendee.AttendeeID))
}

func TestExpenseDoesNotTouchPaymentStatus(t *testing.T) {
	db := testutils.OpenDB(t)
	_, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)
	attendee := seedAttendee(t, db, "99988877766")

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/financial", dto.CreateTransactionRequest{
		Type:       "expense",
		Category:   "Material",
		Amount:     decimal.NewFromInt(30),
		Date:       "2026-03-07",
		AttendeeID: &attendee.AttendeeID,
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "pending", paymentStatusOf(t, db, attendee.AttendeeID))
}

func TestDeleteTransactionKeepsPaymentStatus(t *testing.T) {
	db := testutils.OpenDB(t)
	_, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)
	attendee := seedAttendee(t, db, "12312312312")

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/financial", dto.CreateTransactionRequest{
		Type:       "income",
		Amount:     decimal.NewFromInt(50),
		Date:       "2026-03-07",
		AttendeeID: &attendee.AttendeeID,
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var created map[string]string
	testutils.DecodeBody(t, resp, &created)
	require.Equal(t, "paid", paymentStatusOf(t, db, attendee.AttendeeID))

	resp = testutils.DoJSON(t, app, http.MethodDelete, "/api/financial/"+created["id"], nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// propagação é de mão única: apagar o lançamento não volta o status
	assert.Equal(t, "paid", paymentStatusOf(t, db, attendee.AttendeeID))

	var n int64
	db.Model(&transactionModel.FinancialTransactionModel{}).Count(&n)
	assert.Zero(t, n)
}

func TestListTransactionsJoinsAttendeeName(t *testing.T) {
	db := testutils.OpenDB(t)
	_, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)
	attendee := seedAttendee(t, db, "32132132132")

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/financial", dto.CreateTransactionRequest{
		Type:       "income",
		Amount:     decimal.NewFromInt(50),
		Date:       "2026-03-07",
		AttendeeID: &attendee.AttendeeID,
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = testutils.DoJSON(t, app, http.MethodGet, "/api/financial", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []dto.TransactionDTO
	testutils.DecodeBody(t, resp, &rows)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].AttendeeName)
	assert.Equal(t, "Inscrito Teste", *rows[0].AttendeeName)
}

func TestNegativeAmountRejected(t *testing.T) {
	db := testutils.OpenDB(t)
	_, token := testutils.SeedAdmin(t, db)
	app := testutils.NewApp(t, db)

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/financial", dto.CreateTransactionRequest{
		Type:   "expense",
		Amount: decimal.NewFromInt(-10),
		Date:   "2026-03-07",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
