package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the global logrus logger.
func InitLogger(level string) {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
