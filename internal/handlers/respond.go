package handlers

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/hirepath/hirepath/internal/apperrors"
	"github.com/hirepath/hirepath/internal/logger"
)

// respondError is the single place service failures become HTTP responses.
// Unclassified errors are logged with their cause and answered with a
// generic message so nothing internal leaks to the caller.
func respondError(c *gin.Context, err error) {
	if apperrors.KindOf(err) == apperrors.KindInternal {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeInternal).
			WithError(err).
			Errorf("%s %s failed", c.Request.Method, c.FullPath())
	}
	c.JSON(apperrors.Status(err), gin.H{"message": apperrors.Message(err)})
}
