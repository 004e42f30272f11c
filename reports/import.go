package reports

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"
	"github.com/xuri/excelize/v2"

	"github.com/Draxsd3/controle-aceites/models"
)

// RowError rejects a whole import, pointing at the first offending row.
type RowError struct {
	Row    int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("linha %d: %s", e.Row, e.Reason)
}

var ErrNoWorksheet = errors.New("planilha não encontrada")

const importColumns = 7

// ParseImport reads the first worksheet, skips the header row and converts
// every remaining row into an acceptance. The whole batch is rejected on the
// first invalid row; nothing is partially imported.
//
// Unlike the legacy importer, the channel rule is enforced here too: a
// DISPENSADO row always imports with a NULL channel, and every other status
// requires one.
func ParseImport(r io.Reader) ([]models.Acceptance, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoWorksheet
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	records := make([]models.Acceptance, 0)

	for i := 1; i < len(rows); i++ {
		rowNumber := i + 1
		cells := importCells(rows[i])

		if rowEmpty(cells) {
			continue
		}

		// the channel cell stays empty on waived rows, everything else is mandatory
		for _, cell := range cells[:importColumns-1] {
			if cell == "" {
				return nil, &RowError{Row: rowNumber, Reason: "dados incompletos"}
			}
		}

		date, err := parseCellDate(cells[0])
		if err != nil {
			return nil, &RowError{Row: rowNumber, Reason: "data inválida"}
		}

		amount, err := parseCellAmount(cells[4])
		if err != nil {
			return nil, &RowError{Row: rowNumber, Reason: "valor inválido"}
		}

		status := strings.ToUpper(cells[5])

		record := models.Acceptance{
			OperationDate:   date,
			OperationNumber: cells[1],
			Payer:           cells[2],
			Payee:           cells[3],
			Amount:          amount,
			Status:          status,
		}

		if !record.StatusVaildator(status) {
			return nil, &RowError{Row: rowNumber, Reason: "status desconhecido"}
		}

		if status != models.StatusDispensado {
			if cells[6] == "" {
				return nil, &RowError{Row: rowNumber, Reason: "canal obrigatório"}
			}

			record.Channel = null.StringFrom(cells[6])
		}

		records = append(records, record)
	}

	return records, nil
}

// importCells pads the row out to the full column set and trims every cell.
func importCells(row []string) []string {
	cells := make([]string, importColumns)
	for i := 0; i < importColumns && i < len(row); i++ {
		cells[i] = strings.TrimSpace(row[i])
	}

	return cells
}

func rowEmpty(cells []string) bool {
	for _, cell := range cells {
		if cell != "" {
			return false
		}
	}

	return true
}

// excel serial day zero
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

func parseCellDate(value string) (time.Time, error) {
	if date, err := models.ParseOperationDate(value); err == nil {
		return date, nil
	}

	// date-typed cells come back as serial numbers in raw mode
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return time.Time{}, err
	}

	return excelEpoch.AddDate(0, 0, int(serial)), nil
}

// parseCellAmount also accepts pt-BR formatted values such as R$ 1.234,56.
func parseCellAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), "R$"))
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	return decimal.NewFromString(cleaned)
}
