package middleware

import (
	"net/http"

	errs "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and renders the last error a handler attached to the context.
// Business errors keep their status and message; anything else becomes a generic 500.
func ErrorHandler(base coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(c.Request.Context(), base).Error("Panic recovered in API request", map[string]any{
					"error":      rec,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Detail: errs.MessageInternalServer,
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		log := logger.FromContext(c.Request.Context(), base)
		err := c.Errors.Last().Err
		status := errs.StatusCode(err)

		if be, ok := errs.AsBusinessError(err); ok {
			fields := be.LogFields()
			fields["status"] = status
			fields["path"] = c.Request.URL.Path
			fields["method"] = c.Request.Method
			log.Info("Request rejected", fields)

			c.AbortWithStatusJSON(status, dto.ErrorResponse{Detail: be.Message})
			return
		}

		log.Error("Request failed", map[string]any{
			"error":  err.Error(),
			"status": status,
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
		c.AbortWithStatusJSON(status, dto.ErrorResponse{
			Detail: errs.MessageInternalServer,
		})
	}
}
