package main

import (
	"github.com/joho/godotenv"

	"github.com/Draxsd3/controle-aceites/config"
	"github.com/Draxsd3/controle-aceites/metrics"
	"github.com/Draxsd3/controle-aceites/models"
	"github.com/Draxsd3/controle-aceites/routes"
)

func main() {
	// .env is optional outside development
	_ = godotenv.Load()

	cfg := config.InitializeConfig()

	db, err := config.NewDatabase(cfg.Database)
	if err != nil {
		config.Logger.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&models.Acceptance{}); err != nil {
		config.Logger.Fatalf("failed to migrate schema: %v", err)
	}

	m := metrics.Default()

	go func() {
		if err := metrics.Serve(cfg.Metrics.Addr); err != nil {
			config.Logger.WithError(err).Error("metrics listener stopped")
		}
	}()

	app := routes.SetupRouter(db, cfg, m)

	config.Logger.Infof("server running on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		config.Logger.Fatalf("server stopped: %v", err)
	}
}
