package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmarques/predictpulse/internal/domain/dto"
	"github.com/rmarques/predictpulse/internal/logger"
)

// ErrorHandler is a safety net for errors attached to the Gin context that no
// handler translated into a response. Handlers map their own failures; anything
// left over is logged and answered with a generic 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	logger.L().Error().
		Err(c.Errors.Last().Err).
		Str("path", c.Request.URL.Path).
		Msg("unhandled request error")

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
}

// AbortWithError logs the underlying cause and aborts the request with the
// uniform error body. The cause never reaches the client.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		logger.L().Error().Err(err).Int("status", status).Msg(message)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}
