package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/logger"
)

// RequestLogger writes one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()

		ev := logger.L().Info()
		if status >= 500 {
			ev = logger.L().Error()
		} else if status >= 400 {
			ev = logger.L().Warn()
		}

		ev.Str("request_id", GetRequestID(c)).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Uint("user_id", CurrentIdentity(c).UserID).
			Msg("http_request")
	}
}
