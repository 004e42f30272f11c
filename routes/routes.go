package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/Draxsd3/controle-aceites/config"
	"github.com/Draxsd3/controle-aceites/controllers"
	"github.com/Draxsd3/controle-aceites/metrics"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, m *metrics.AcceptanceMetrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "controle-aceites",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	acceptanceController := controllers.NewAcceptanceController(db, m)
	reportController := controllers.NewReportController(db, m, cfg)

	app.Get("/healthz", controllers.GetHealth)

	api := app.Group("/api")

	api.Post("/acceptances", acceptanceController.Create)
	api.Get("/acceptances", acceptanceController.List)
	api.Put("/acceptances/:id", acceptanceController.Update)
	api.Delete("/acceptances/:id", acceptanceController.Delete)
	api.Get("/acceptances/:id/export", acceptanceController.ExportOne)

	api.Get("/reports/data", reportController.GetReportData)
	api.Get("/reports/:format", reportController.GetReport)

	api.Get("/export/excel", reportController.ExportExcel)
	api.Post("/import/excel", reportController.ImportExcel)

	api.Post("/backup", reportController.Backup)

	return app
}
