package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"oblog/src/app/http/response"
	"oblog/src/infra/logger"
)

// Recovery turns a panic in a handler into a logged 500 response with the
// generic internal error body.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)

				logger.WithRequestID(log, requestID).Error("panic recovered",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				response.InternalError(c, requestID)
				c.Abort()
			}
		}()

		c.Next()
	}
}
