package cmd

import (
	"github.com/grovetools/core/logging"
	"github.com/sirupsen/logrus"
)

var (
	log  = logging.NewLogger("promptsite")
	ulog = logging.NewUnifiedLogger("promptsite")
)

// getLogger returns the logrus.Logger for use with packages that expect it
func getLogger() *logrus.Logger {
	return log.Logger
}
