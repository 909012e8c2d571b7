package services

import (
	"github.com/franciscosanchezn/gin-nutrition-api/internal/repository"
	"github.com/sirupsen/logrus"
)

// Domain errors returned by the services; compare with errors.Is
var (
	ErrDuplicate           = repository.ErrDuplicate
	ErrNotFound            = repository.ErrNotFound
	ErrInvalidReference    = repository.ErrInvalidReference
	ErrReferentialConflict = repository.ErrReferentialConflict
)

// DefaultListLimit is used when a list call passes a non-positive limit
const DefaultListLimit = 100

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLevel changes the level of the services package logger
func SetLevel(level logrus.Level) {
	log.SetLevel(level)
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
