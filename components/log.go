package components

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds logger writing to w. Unknown level falls back to info.
func NewLogger(w io.Writer, level string, json bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	if json {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}
