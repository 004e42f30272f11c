package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/Draxsd3/controle-aceites/models"
)

// Print layout for the browser print dialog. Same table as the other
// exporters, landscape page, generation timestamp in the title block.
const printPage = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Relatório de Aceitações</title>
<style>
  @page { size: A4 landscape; margin: 15mm; }
  body { font-family: Helvetica, Arial, sans-serif; font-size: 11px; color: #333; }
  h1 { color: #C5A572; font-size: 20px; margin-bottom: 2px; }
  p.generated { color: #666; font-size: 12px; margin-top: 0; }
  table { width: 100%; border-collapse: collapse; }
  th, td { border: 0.5px solid #999; padding: 4px; text-align: left; }
  th { background: #F5F5F5; font-weight: bold; }
  td.amount { text-align: right; }
  tr.banner td { background: #E8E8E8; font-weight: bold; }
</style>
</head>
<body>
<h1>Relatório de Aceitações</h1>
<p class="generated">Gerado em {{.GeneratedAt}}</p>
<table>
  <thead>
    <tr>{{range .Columns}}<th>{{.Title}}</th>{{end}}</tr>
  </thead>
  <tbody>
    {{- range .Sections}}
    {{- if .Banner}}
    <tr class="banner"><td colspan="{{$.ColumnCount}}">{{.Banner}}</td></tr>
    {{- end}}
    {{- range .Rows}}
    <tr>{{range .}}<td class="{{.Class}}">{{.Text}}</td>{{end}}</tr>
    {{- end}}
    {{- end}}
  </tbody>
</table>
</body>
</html>
`

var printTemplate = template.Must(template.New("print").Parse(printPage))

type printCell struct {
	Text  string
	Class string
}

type printSection struct {
	Banner string
	Rows   [][]printCell
}

type printData struct {
	GeneratedAt string
	Columns     []Column
	ColumnCount int
	Sections    []printSection
}

// GeneratePrintHTML renders the flat print layout.
func GeneratePrintHTML(records []models.Acceptance, columns []Column) ([]byte, error) {
	sections := []printSection{{Rows: printRows(records, columns)}}

	return renderPrint(columns, sections)
}

// GenerateGroupedPrintHTML renders one banner per group before its rows.
func GenerateGroupedPrintHTML(groups []Group, columns []Column) ([]byte, error) {
	sections := make([]printSection, 0, len(groups))
	for _, group := range groups {
		sections = append(sections, printSection{
			Banner: fmt.Sprintf("%s | %d registros | Total %s", group.Key, group.Count, FormatBRL(group.Total)),
			Rows:   printRows(group.Items, columns),
		})
	}

	return renderPrint(columns, sections)
}

func printRows(records []models.Acceptance, columns []Column) [][]printCell {
	rows := make([][]printCell, 0, len(records))
	for i := range records {
		row := make([]printCell, 0, len(columns))
		for _, column := range columns {
			class := ""
			if column.Key == "amount" {
				class = "amount"
			}

			row = append(row, printCell{Text: CellValue(records[i], column.Key), Class: class})
		}
		rows = append(rows, row)
	}

	return rows
}

func renderPrint(columns []Column, sections []printSection) ([]byte, error) {
	now := time.Now()

	var buf bytes.Buffer
	err := printTemplate.Execute(&buf, printData{
		GeneratedAt: now.Format(models.DateBR) + " às " + now.Format("15:04:05"),
		Columns:     columns,
		ColumnCount: len(columns),
		Sections:    sections,
	})
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
