package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/threadline/bagging-service/internal/domain/dto"
	"github.com/threadline/bagging-service/internal/i18n"
	"github.com/threadline/bagging-service/internal/logger"
)

// ErrorHandler returns a middleware that logs errors attached to the gin
// context after the handler chain has run. Errors the handlers already
// turned into responses are only logged; anything else becomes a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.ForComponent("http")
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status", c.Writer.Status()).
			Msg("Request error")

		if !c.Writer.Written() {
			locale := i18n.GetLocale(c)
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, locale)
			errorResp := dto.NewError(dto.ErrCodeInternal, message).
				WithRequestID(requestID)
			c.JSON(http.StatusInternalServerError, errorResp)
		}
	}
}
