package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Draxsd3/controle-aceites/config"
	"github.com/Draxsd3/controle-aceites/controllers/entities"
	"github.com/Draxsd3/controle-aceites/controllers/helpers"
	"github.com/Draxsd3/controle-aceites/controllers/queries"
	"github.com/Draxsd3/controle-aceites/metrics"
	"github.com/Draxsd3/controle-aceites/models"
	"github.com/Draxsd3/controle-aceites/reports"
	"github.com/Draxsd3/controle-aceites/types"
)

type ReportController struct {
	db       *gorm.DB
	metrics  *metrics.AcceptanceMetrics
	backup   config.BackupConfig
	database config.DatabaseConfig
}

func NewReportController(db *gorm.DB, m *metrics.AcceptanceMetrics, cfg *config.Config) *ReportController {
	return &ReportController{
		db:       db,
		metrics:  m,
		backup:   cfg.Backup,
		database: cfg.Database,
	}
}

// GetReport renders the filtered (and optionally grouped) record set in the
// requested format.
func (ctl *ReportController) GetReport(c *fiber.Ctx) error {
	format := c.Params("format")
	if format != types.FormatPDF && format != types.FormatExcel && format != types.FormatHTML {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{"report.invalid_format"},
		})
	}

	started := time.Now()

	records, filters, columns, err := ctl.queryReport(c)
	if err != nil {
		return validationFailure(c, err)
	}

	var data []byte
	var renderErr error

	if filters.Grouped() {
		groups := reports.GroupRecords(records, filters.GroupBy)

		switch format {
		case types.FormatPDF:
			data, renderErr = reports.GenerateGroupedPDF(groups, columns)
		case types.FormatExcel:
			data, renderErr = reports.GenerateGroupedExcel(groups, columns)
		default:
			data, renderErr = reports.GenerateGroupedPrintHTML(groups, columns)
		}
	} else {
		switch format {
		case types.FormatPDF:
			data, renderErr = reports.GeneratePDF(records, columns)
		case types.FormatExcel:
			data, renderErr = reports.GenerateExcel(records, columns)
		default:
			data, renderErr = reports.GeneratePrintHTML(records, columns)
		}
	}

	if renderErr != nil {
		config.Logger.WithError(renderErr).Error("failed to render report")

		return c.Status(500).JSON(helpers.Errors{Errors: []string{renderErr.Error()}})
	}

	switch format {
	case types.FormatPDF:
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, "attachment; filename=report.pdf")
	case types.FormatExcel:
		c.Set(fiber.HeaderContentType, xlsxContentType)
		c.Set(fiber.HeaderContentDisposition, "attachment; filename=report.xlsx")
	default:
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	}

	ctl.metrics.RecordReport(format, started)

	return c.Send(data)
}

// GetReportData returns the filtered (and optionally grouped) set as JSON,
// for report previews.
func (ctl *ReportController) GetReportData(c *fiber.Ctx) error {
	records, filters, _, err := ctl.queryReport(c)
	if err != nil {
		return validationFailure(c, err)
	}

	if filters.Grouped() {
		groups := reports.GroupRecords(records, filters.GroupBy)

		groups_json := make([]entities.GroupEntity, 0, len(groups))
		for _, group := range groups {
			groups_json = append(groups_json, group.ToJSON())
		}

		return c.Status(200).JSON(groups_json)
	}

	records_json := make([]entities.AcceptanceEntity, 0, len(records))
	for i := range records {
		records_json = append(records_json, records[i].ToJSON())
	}

	return c.Status(200).JSON(records_json)
}

// ExportExcel dumps the whole table, newest first.
func (ctl *ReportController) ExportExcel(c *fiber.Ctx) error {
	var records []models.Acceptance
	if err := ctl.db.Order("created_at " + types.OrderByDesc).Find(&records).Error; err != nil {
		config.Logger.WithError(err).Error("failed to load acceptances for export")

		return c.Status(500).JSON(helpers.Errors{Errors: []string{err.Error()}})
	}

	started := time.Now()

	data, err := reports.GenerateExcel(records, reports.ReportColumns)
	if err != nil {
		config.Logger.WithError(err).Error("failed to export acceptances")

		return c.Status(500).JSON(helpers.Errors{Errors: []string{err.Error()}})
	}

	ctl.metrics.RecordReport(types.FormatExcel, started)

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=dados_aceites.xlsx")

	return c.Send(data)
}

// ImportExcel ingests a multipart spreadsheet upload as one batch. Any bad
// row rejects the whole file.
func (ctl *ReportController) ImportExcel(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{"import.missing_file"},
		})
	}

	file, err := header.Open()
	if err != nil {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{"import.unreadable_file"},
		})
	}
	defer file.Close()

	records, err := reports.ParseImport(file)
	if err != nil {
		ctl.metrics.RecordImportFailure()

		return c.Status(400).JSON(helpers.Errors{Errors: []string{err.Error()}})
	}

	batch := uuid.New().String()

	if len(records) > 0 {
		err = ctl.db.Transaction(func(tx *gorm.DB) error {
			return tx.CreateInBatches(&records, 200).Error
		})
		if err != nil {
			config.Logger.WithError(err).WithField("batch_id", batch).Error("failed to insert import batch")

			return c.Status(500).JSON(helpers.Errors{Errors: []string{err.Error()}})
		}
	}

	ctl.metrics.RecordImport(len(records))
	config.Logger.WithFields(map[string]interface{}{
		"batch_id": batch,
		"rows":     len(records),
	}).Info("spreadsheet import committed")

	return c.Status(200).JSON(fiber.Map{
		"message":  "dados importados com sucesso",
		"imported": len(records),
		"batchId":  batch,
	})
}

func (ctl *ReportController) queryReport(c *fiber.Ctx) ([]models.Acceptance, reports.Filters, []reports.Column, error) {
	params := new(queries.ReportFilters)
	if err := c.QueryParser(params); err != nil {
		return nil, reports.Filters{}, nil, &reports.ValidationError{Key: "server.method.invalid_query"}
	}

	filters := reports.Filters{
		StartDate:       params.StartDate,
		EndDate:         params.EndDate,
		Status:          params.Status,
		Statuses:        splitList(params.Statuses),
		Payer:           params.Payer,
		Payee:           params.Payee,
		Channel:         params.Channel,
		OperationNumber: params.OperationNumber,
		MinAmount:       params.MinAmount,
		MaxAmount:       params.MaxAmount,
		GroupBy:         params.GroupBy,
		OrderBy:         params.OrderBy,
	}

	tx, err := filters.Apply(ctl.db.Model(&models.Acceptance{}))
	if err != nil {
		return nil, filters, nil, err
	}

	var records []models.Acceptance
	if err := tx.Find(&records).Error; err != nil {
		return nil, filters, nil, err
	}

	return records, filters, reports.SelectColumns(params.Columns), nil
}

func splitList(value string) []string {
	if len(value) == 0 {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); len(trimmed) > 0 {
			out = append(out, trimmed)
		}
	}

	return out
}
