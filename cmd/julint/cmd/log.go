package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns the CLI logger. It writes to w at warn level, or at
// debug level when verbose is set.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
