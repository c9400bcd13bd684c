package controller

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/constants"
	attendanceService "profoli_backend/internals/features/event/attendance/service"
	attendeeDTO "profoli_backend/internals/features/event/attendees/dto"
	attendeeModel "profoli_backend/internals/features/event/attendees/model"
	transactionService "profoli_backend/internals/features/finance/transactions/service"
	"profoli_backend/internals/helpers/pdfutil"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// =============================
// GET /api/reports/attendees
// =============================
func (ctrl *ReportController) AttendeesReport(c *fiber.Ctx) error {
	var attendees []attendeeModel.AttendeeModel
	if err := ctrl.DB.Order("attendee_name").Find(&attendees).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	columns := []string{"Nome", "CPF", "Igreja", "Telefone", "Cargos", "Status Pgto"}
	rows := make([][]string, 0, len(attendees))
	for _, a := range attendees {
		rows = append(rows, []string{
			a.AttendeeName,
			a.AttendeeCPF,
			a.AttendeeChurch,
			a.AttendeePhone,
			strings.Join(attendeeDTO.ParseRoles(a.AttendeeRoles), ", "),
			paymentStatusLabel(a.AttendeePaymentStatus),
		})
	}

	return ctrl.sendPDF(c, "Relatório Geral de Inscritos", columns, rows)
}

// =============================
// GET /api/reports/financial
// =============================
func (ctrl *ReportController) FinancialReport(c *fiber.Ctx) error {
	txns, err := transactionService.List(ctrl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	columns := []string{"Data", "Tipo", "Categoria", "Valor (R$)", "Descrição", "Inscrito"}
	rows := make([][]string, 0, len(txns))
	for _, t := range txns {
		kind := "Saída"
		if t.Type == constants.TransactionIncome {
			kind = "Entrada"
		}
		rows = append(rows, []string{
			brDate(t.Date),
			kind,
			t.Category,
			t.Amount.StringFixed(2),
			orDash(t.Description),
			orDashPtr(t.AttendeeName),
		})
	}

	return ctrl.sendPDF(c, "Relatório Financeiro", columns, rows)
}

// =============================
// GET /api/reports/attendance?date&theme_id
// =============================
// Matriz inscrito × data: cada data vira uma coluna, célula "Presente" ou
// "Ausente".
func (ctrl *ReportController) AttendanceReport(c *fiber.Ctx) error {
	var attendees []attendeeModel.AttendeeModel
	if err := ctrl.DB.Order("attendee_name").Find(&attendees).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	records, err := attendanceService.List(ctrl.DB, c.Query("date"), c.Query("theme_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	dateSet := map[string]bool{}
	present := map[string]bool{} // attendee_id|date -> presente
	for _, r := range records {
		dateSet[r.AttendanceDate] = true
		if r.AttendancePresent {
			present[r.AttendanceAttendeeID+"|"+r.AttendanceDate] = true
		}
	}
	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	columns := append([]string{"Nome"}, dates...)
	rows := make([][]string, 0, len(attendees))
	for _, a := range attendees {
		row := []string{a.AttendeeName}
		for _, d := range dates {
			if present[a.AttendeeID+"|"+d] {
				row = append(row, "Presente")
			} else {
				row = append(row, "Ausente")
			}
		}
		rows = append(rows, row)
	}

	return ctrl.sendPDF(c, "Relatório de Frequência", columns, rows)
}

func (ctrl *ReportController) sendPDF(c *fiber.Ctx, title string, columns []string, rows [][]string) error {
	out, err := pdfutil.Table(title, columns, rows)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	filename := strings.ReplaceAll(strings.ToLower(title), " ", "_") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(out)
}

func paymentStatusLabel(status string) string {
	switch status {
	case constants.PaymentStatusPaid:
		return "Pago"
	case constants.PaymentStatusExempt:
		return "Isento"
	default:
		return "Pendente"
	}
}

func brDate(date string) string {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.Format("02/01/2006")
	}
	return date
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func orDashPtr(s *string) string {
	if s == nil {
		return "-"
	}
	return orDash(*s)
}
