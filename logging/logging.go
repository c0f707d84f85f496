// Package logging holds the process-wide logrus logger.
package logging

import (
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// InitLogger configures the shared logger at the given level. Packages
// grab the logger in their init functions, so reconfiguration mutates the
// shared instance instead of replacing it.
func InitLogger(level logrus.Level) {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	logger.SetLevel(level)
}

// GetLogger returns the shared logger, initializing it at info level if
// InitLogger has not been called yet.
func GetLogger() *logrus.Logger {
	if logger == nil {
		InitLogger(logrus.InfoLevel)
	}
	return logger
}
