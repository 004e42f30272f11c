package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Backup   BackupConfig   `yaml:"backup"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"SERVER_PORT" env-default:"3000"`
}

type DatabaseConfig struct {
	Host         string `yaml:"host" env:"DATABASE_HOST" env-default:"localhost"`
	Port         string `yaml:"port" env:"DATABASE_PORT" env-default:"5432"`
	User         string `yaml:"user" env:"DATABASE_USER" env-default:"postgres"`
	Pass         string `yaml:"pass" env:"DATABASE_PASS" env-default:""`
	Name         string `yaml:"name" env:"DATABASE_NAME" env-default:"controle_aceites"`
	SSLMode      string `yaml:"sslmode" env:"DATABASE_SSLMODE" env-default:"disable"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"DATABASE_MAX_IDLE_CONNS" env-default:"5"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type BackupConfig struct {
	Dir string `yaml:"dir" env:"BACKUP_DIR" env-default:"./backups"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr" env:"METRICS_ADDR" env-default:":9102"`
}

// MustLoad reads the YAML file named by ACEITES_CONFIG_PATH when set, falling
// back to environment variables only. It never returns on failure.
func MustLoad() *Config {
	var cfg Config

	if path := os.Getenv("ACEITES_CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			Logger.Fatalf("failed to read config file %s: %v", path, err)
		}

		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		Logger.Fatalf("failed to read config from environment: %v", err)
	}

	return &cfg
}

func InitializeConfig() *Config {
	NewLoggerService()

	// amounts travel as bare JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	return MustLoad()
}
