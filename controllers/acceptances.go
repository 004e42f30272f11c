package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Draxsd3/controle-aceites/config"
	"github.com/Draxsd3/controle-aceites/controllers/entities"
	"github.com/Draxsd3/controle-aceites/controllers/helpers"
	"github.com/Draxsd3/controle-aceites/controllers/queries"
	"github.com/Draxsd3/controle-aceites/metrics"
	"github.com/Draxsd3/controle-aceites/models"
	"github.com/Draxsd3/controle-aceites/reports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AcceptanceController struct {
	db      *gorm.DB
	metrics *metrics.AcceptanceMetrics
}

func NewAcceptanceController(db *gorm.DB, m *metrics.AcceptanceMetrics) *AcceptanceController {
	return &AcceptanceController{db: db, metrics: m}
}

func (ctl *AcceptanceController) Create(c *fiber.Ctx) error {
	errs := new(helpers.Errors)
	payload := new(helpers.AcceptanceParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(payload, errs)
	if errs.Size() > 0 {
		return c.Status(400).JSON(errs)
	}

	acceptance := payload.BuildAcceptance(errs)
	if errs.Size() > 0 {
		return c.Status(400).JSON(errs)
	}

	if err := ctl.db.Create(acceptance).Error; err != nil {
		config.Logger.WithError(err).Error("failed to create acceptance")

		return c.Status(500).JSON(helpers.Errors{Errors: []string{err.Error()}})
	}

	ctl.metrics.RecordCreated(acceptance.Status)

	return c.Status(201).JSON(acceptance.ToJSON())
}

func (ctl *AcceptanceController) List(c *fiber.Ctx) error {
	params := new(queries.AcceptanceFilters)
	if err := c.QueryParser(params); err != nil {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	filters := reports.Filters{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Status:    params.Status,
		Payer:     params.Payer,
		MinAmount: params.MinAmount,
		MaxAmount: params.MaxAmount,
	}

	tx, err := filters.Apply(ctl.db.Model(&models.Acceptance{}))
	if err != nil {
		return validationFailure(c, err)
	}

	var records []models.Acceptance
	if err := tx.Find(&records).Error; err != nil {
		config.Logger.WithError(err).Error("failed to list acceptances")

		return c.Status(500).JSON(helpers.Errors{Errors: []string{err.Error()}})
	}

	records_json := make([]entities.AcceptanceEntity, 0, len(records))
	for i := range records {
		records_json = append(records_json, records[i].ToJSON())
	}

	return c.Status(200).JSON(records_json)
}

func (ctl *AcceptanceController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{"acceptance.invalid_id"},
		})
	}

	var existing models.Acceptance
	result := ctl.db.First(&existing, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	errs := new(helpers.Errors)
	payload := new(helpers.AcceptanceParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(payload, errs)
	if errs.Size() > 0 {
		return c.Status(400).JSON(errs)
	}

	acceptance := payload.BuildAcceptance(errs)
	if errs.Size() > 0 {
		return c.Status(400).JSON(errs)
	}

	acceptance.ID = existing.ID
	acceptance.CreatedAt = existing.CreatedAt

	if err := ctl.db.Save(acceptance).Error; err != nil {
		config.Logger.WithError(err).Error("failed to update acceptance")

		return c.Status(500).JSON(helpers.Errors{Errors: []string{err.Error()}})
	}

	ctl.metrics.RecordUpdated()

	return c.Status(200).JSON(acceptance.ToJSON())
}

// Delete removes the record. The response is 200 whether or not the id ever
// existed.
func (ctl *AcceptanceController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{"acceptance.invalid_id"},
		})
	}

	if err := ctl.db.Delete(&models.Acceptance{}, id).Error; err != nil {
		config.Logger.WithError(err).Error("failed to delete acceptance")

		return c.Status(500).JSON(helpers.Errors{Errors: []string{err.Error()}})
	}

	ctl.metrics.RecordDeleted()

	return c.Status(200).JSON(fiber.Map{"message": "acceptance deleted"})
}

func (ctl *AcceptanceController) ExportOne(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{"acceptance.invalid_id"},
		})
	}

	var record models.Acceptance
	result := ctl.db.First(&record, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	data, err := reports.GenerateExcel([]models.Acceptance{record}, reports.ReportColumns)
	if err != nil {
		config.Logger.WithError(err).Error("failed to export acceptance")

		return c.Status(500).JSON(helpers.Errors{Errors: []string{err.Error()}})
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=aceite_%s.xlsx", record.OperationNumber))

	return c.Send(data)
}

func validationFailure(c *fiber.Ctx, err error) error {
	var verr *reports.ValidationError
	if errors.As(err, &verr) {
		return c.Status(400).JSON(helpers.Errors{Errors: []string{verr.Key}})
	}

	return c.Status(500).JSON(helpers.Errors{Errors: []string{err.Error()}})
}
