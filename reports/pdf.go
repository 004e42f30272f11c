package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Draxsd3/controle-aceites/models"
)

// column widths in mm on an A4 landscape page
var pdfWidths = map[string]float64{
	"operationDate":   28,
	"operationNumber": 34,
	"payer":           58,
	"payee":           58,
	"amount":          34,
	"status":          36,
	"channel":         29,
}

// GeneratePDF renders the landscape tabular report and returns the PDF bytes.
func GeneratePDF(records []models.Acceptance, columns []Column) ([]byte, error) {
	pdf, tr := newReportPDF(columns)

	for i := range records {
		writePDFRow(pdf, tr, columns, records[i])
	}

	return pdfBytes(pdf)
}

// GenerateGroupedPDF renders a banner line per group before the group's rows.
func GenerateGroupedPDF(groups []Group, columns []Column) ([]byte, error) {
	pdf, tr := newReportPDF(columns)

	for _, group := range groups {
		writePDFBanner(pdf, tr, columns, group)

		for i := range group.Items {
			writePDFRow(pdf, tr, columns, group.Items[i])
		}
	}

	return pdfBytes(pdf)
}

func newReportPDF(columns []Column) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(102, 102, 102)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(197, 165, 114)
	pdf.CellFormat(0, 10, tr("Relatório de Aceitações"), "", 1, "L", false, 0, "")

	now := time.Now()
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Gerado em %s às %s", now.Format(models.DateBR), now.Format("15:04:05"))), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	writePDFHeader(pdf, tr, columns)

	return pdf, tr
}

func writePDFHeader(pdf *gofpdf.Fpdf, tr func(string) string, columns []Column) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(51, 51, 51)

	for _, column := range columns {
		pdf.CellFormat(pdfWidths[column.Key], 7, tr(column.Title), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func writePDFRow(pdf *gofpdf.Fpdf, tr func(string) string, columns []Column, record models.Acceptance) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)

	for _, column := range columns {
		align := "L"
		if column.Key == "amount" {
			align = "R"
		}

		pdf.CellFormat(pdfWidths[column.Key], 6, tr(CellValue(record, column.Key)), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func writePDFBanner(pdf *gofpdf.Fpdf, tr func(string) string, columns []Column, group Group) {
	var width float64
	for _, column := range columns {
		width += pdfWidths[column.Key]
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(232, 232, 232)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(width, 7, tr(fmt.Sprintf("%s | %d registros | Total %s", group.Key, group.Count, FormatBRL(group.Total))), "1", 1, "L", true, 0, "")
}

func pdfBytes(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
