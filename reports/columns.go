package reports

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Draxsd3/controle-aceites/models"
)

type Column struct {
	Key   string
	Title string
}

// ReportColumns is the fixed export layout, headers per the acceptance grid.
var ReportColumns = []Column{
	{Key: "operationDate", Title: "Data da Operação"},
	{Key: "operationNumber", Title: "Nº da Operação"},
	{Key: "payer", Title: "Cedente"},
	{Key: "payee", Title: "Sacado"},
	{Key: "amount", Title: "Valor"},
	{Key: "status", Title: "Status"},
	{Key: "channel", Title: "Canal"},
}

// SelectColumns resolves a comma separated column subset against the fixed
// layout, preserving layout order. Unknown keys are ignored; an empty or
// fully-unknown selection falls back to the full layout.
func SelectColumns(selection string) []Column {
	if len(selection) == 0 {
		return ReportColumns
	}

	wanted := make(map[string]bool)
	for _, key := range strings.Split(selection, ",") {
		wanted[strings.TrimSpace(key)] = true
	}

	columns := make([]Column, 0, len(ReportColumns))
	for _, column := range ReportColumns {
		if wanted[column.Key] {
			columns = append(columns, column)
		}
	}

	if len(columns) == 0 {
		return ReportColumns
	}

	return columns
}

// CellValue renders one column of one record the way every exporter shows it.
func CellValue(record models.Acceptance, key string) string {
	switch key {
	case "operationDate":
		return record.OperationDate.Format(models.DateBR)
	case "operationNumber":
		return record.OperationNumber
	case "payer":
		return record.Payer
	case "payee":
		return record.Payee
	case "amount":
		return FormatBRL(record.Amount)
	case "status":
		return record.Status
	case "channel":
		return record.DisplayChannel()
	default:
		return ""
	}
}

// FormatBRL renders an amount with pt-BR separators, e.g. R$ 1.234,56.
func FormatBRL(value decimal.Decimal) string {
	fixed := value.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	parts := strings.SplitN(fixed, ".", 2)
	integer, cents := parts[0], parts[1]

	var grouped strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	out := "R$ " + grouped.String() + "," + cents
	if negative {
		out = "-" + out
	}

	return out
}
