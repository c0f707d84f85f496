package handler

import (
	"github.com/sirupsen/logrus"

	"github.com/capricorn-med/backend/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
