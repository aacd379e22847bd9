package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger. LOG_LEVEL picks the level
// (default info); output is JSON on stdout.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
