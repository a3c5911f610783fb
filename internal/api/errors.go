package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmarques/predictpulse/internal/domain/apperr"
	"github.com/rmarques/predictpulse/internal/domain/dto"
	"github.com/rmarques/predictpulse/internal/logger"
)

// respondError maps a failure to its HTTP status and the uniform error body.
//
// The taxonomy is closed: bad request → 400, not found → 404, storage → 500.
// Anything untyped is treated as internal; in both 500 cases the full error is
// logged and the client only sees a generic message.
func respondError(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unclassified error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
		return
	}

	switch e.Kind {
	case apperr.KindBadRequest:
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(e.Message))
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(e.Message))
	default:
		// Storage (and the never-expected request-time config case): log the
		// wrapped cause, answer with the generic message only.
		logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("storage error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(e.Message))
	}
}
