package report

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the diagnostic logger. Level is one of debug, info,
// warn or error; format is text or json. Invalid levels fall back to warn.
func NewLogger(out io.Writer, level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)

	return logger
}

// Discard returns a logger that writes nothing. Handy for tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
