package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New configures the process logger from LOG_LEVEL / LOG_FORMAT.
func New() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	if os.Getenv("LOG_FORMAT") == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log
}
