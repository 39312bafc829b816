// internal/utils/logger.go
package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/shopsmart-backend/internal/config"
)

// ConfigureLogger applies the configured level and formatter to the standard logrus logger.
func ConfigureLogger(cfg config.LogConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)

	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if err != nil {
		logrus.WithField("level", cfg.Level).Warn("Unknown log level, using info")
	}
}
