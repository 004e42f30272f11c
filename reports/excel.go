package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Draxsd3/controle-aceites/models"
)

const sheetAceites = "Aceitações"

const currencyNumFmt = `"R$"#,##0.00`

var thinBorders = []excelize.Border{
	{Type: "top", Style: 1, Color: "000000"},
	{Type: "left", Style: 1, Color: "000000"},
	{Type: "bottom", Style: 1, Color: "000000"},
	{Type: "right", Style: 1, Color: "000000"},
}

type excelStyles struct {
	header int
	cell   int
	amount int
	banner int
}

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	var styles excelStyles
	var err error

	styles.header, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F5F5F5"}},
		Border: thinBorders,
	})
	if err != nil {
		return styles, err
	}

	styles.cell, err = f.NewStyle(&excelize.Style{Border: thinBorders})
	if err != nil {
		return styles, err
	}

	numFmt := currencyNumFmt
	styles.amount, err = f.NewStyle(&excelize.Style{
		Border:       thinBorders,
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return styles, err
	}

	styles.banner, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E8E8E8"}},
		Border: thinBorders,
	})

	return styles, err
}

// GenerateExcel renders records as a single styled worksheet and returns the
// xlsx bytes. The input slice is never modified.
func GenerateExcel(records []models.Acceptance, columns []Column) ([]byte, error) {
	f, styles, err := newWorkbook(columns)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	row := 2
	for i := range records {
		if err := writeRecordRow(f, styles, columns, row, records[i]); err != nil {
			return nil, err
		}
		row++
	}

	return workbookBytes(f)
}

// GenerateGroupedExcel renders one banner row per group followed by the
// group's records.
func GenerateGroupedExcel(groups []Group, columns []Column) ([]byte, error) {
	f, styles, err := newWorkbook(columns)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	row := 2
	for _, group := range groups {
		if err := writeBannerRow(f, styles, columns, row, group); err != nil {
			return nil, err
		}
		row++

		for i := range group.Items {
			if err := writeRecordRow(f, styles, columns, row, group.Items[i]); err != nil {
				return nil, err
			}
			row++
		}
	}

	return workbookBytes(f)
}

func newWorkbook(columns []Column) (*excelize.File, excelStyles, error) {
	f := excelize.NewFile()

	var styles excelStyles

	if err := f.SetSheetName("Sheet1", sheetAceites); err != nil {
		return nil, styles, err
	}

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, styles, err
	}

	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, styles, err
		}

		if err := f.SetCellValue(sheetAceites, cell, column.Title); err != nil {
			return nil, styles, err
		}
	}

	last, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return nil, styles, err
	}

	if err := f.SetCellStyle(sheetAceites, "A1", last+"1", styles.header); err != nil {
		return nil, styles, err
	}

	if err := f.SetColWidth(sheetAceites, "A", last, 20); err != nil {
		return nil, styles, err
	}

	return f, styles, nil
}

func writeRecordRow(f *excelize.File, styles excelStyles, columns []Column, row int, record models.Acceptance) error {
	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}

		style := styles.cell

		if column.Key == "amount" {
			// numeric cell so the currency format applies
			if err := f.SetCellValue(sheetAceites, cell, record.Amount.InexactFloat64()); err != nil {
				return err
			}
			style = styles.amount
		} else if err := f.SetCellValue(sheetAceites, cell, CellValue(record, column.Key)); err != nil {
			return err
		}

		if err := f.SetCellStyle(sheetAceites, cell, cell, style); err != nil {
			return err
		}
	}

	return nil
}

func writeBannerRow(f *excelize.File, styles excelStyles, columns []Column, row int, group Group) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(columns), row)
	if err != nil {
		return err
	}

	if err := f.MergeCell(sheetAceites, first, last); err != nil {
		return err
	}

	banner := fmt.Sprintf("%s | %d registros | Total %s", group.Key, group.Count, FormatBRL(group.Total))
	if err := f.SetCellValue(sheetAceites, first, banner); err != nil {
		return err
	}

	return f.SetCellStyle(sheetAceites, first, last, styles.banner)
}

func workbookBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
