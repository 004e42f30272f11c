package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func NewLoggerService() {
	Logger.SetOutput(os.Stdout)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}

	Logger.SetLevel(level)
}
