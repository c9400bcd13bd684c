// file: internals/helpers/pdfutil/table.go
package pdfutil

import (
	"bytes"
	"errors"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	marginLeft = 14.0
	pageWidth  = 210.0 // A4 retrato
	rowHeight  = 8.0
)

// Table monta o PDF tabular padrão dos relatórios: título, carimbo de
// geração e tabela listrada com cabeçalho azul. Função pura dos argumentos
// (fora o timestamp de geração).
func Table(title string, columns []string, rows [][]string) ([]byte, error) {
	if len(columns) == 0 {
		return nil, errors.New("relatório sem colunas")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, 15, marginLeft)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")

	now := time.Now()
	pdf.SetFont("Helvetica", "", 11)
	stamp := "Gerado em: " + now.Format("02/01/2006") + " às " + now.Format("15:04")
	pdf.CellFormat(0, 8, tr(stamp), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	usable := pageWidth - 2*marginLeft
	colWidth := usable / float64(len(columns))

	// cabeçalho (azul, texto branco)
	pdf.SetFillColor(30, 58, 138)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	for _, col := range columns {
		pdf.CellFormat(colWidth, rowHeight, tr(col), "", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for i, row := range rows {
		fill := i%2 == 1
		pdf.SetFillColor(241, 245, 249)
		for j := 0; j < len(columns); j++ {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			pdf.CellFormat(colWidth, rowHeight, tr(cell), "", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
