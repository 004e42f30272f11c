package controllers

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Draxsd3/controle-aceites/config"
	"github.com/Draxsd3/controle-aceites/controllers/helpers"
)

// Backup shells out to pg_dump and writes a timestamped dump under the
// configured backup directory. The dump runs synchronously within the
// request.
func (ctl *ReportController) Backup(c *fiber.Ctx) error {
	filename := fmt.Sprintf("backup_%s.sql", time.Now().Format("2006-01-02T15-04-05"))

	if err := os.MkdirAll(ctl.backup.Dir, 0o755); err != nil {
		config.Logger.WithError(err).Error("failed to create backup directory")
		ctl.metrics.RecordBackup(false)

		return c.Status(500).JSON(helpers.Errors{Errors: []string{"backup.failed"}})
	}

	path := filepath.Join(ctl.backup.Dir, filename)

	out, err := os.Create(path)
	if err != nil {
		config.Logger.WithError(err).Error("failed to create backup file")
		ctl.metrics.RecordBackup(false)

		return c.Status(500).JSON(helpers.Errors{Errors: []string{"backup.failed"}})
	}
	defer out.Close()

	cmd := exec.Command("pg_dump",
		"-h", ctl.database.Host,
		"-p", ctl.database.Port,
		"-U", ctl.database.User,
		"-d", ctl.database.Name,
	)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+ctl.database.Pass)
	cmd.Stdout = out

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(path)
		config.Logger.WithError(err).WithField("stderr", stderr.String()).Error("pg_dump failed")
		ctl.metrics.RecordBackup(false)

		return c.Status(500).JSON(helpers.Errors{Errors: []string{"backup.failed"}})
	}

	ctl.metrics.RecordBackup(true)

	return c.Status(200).JSON(fiber.Map{
		"message":  "backup criado com sucesso",
		"filename": filename,
	})
}
