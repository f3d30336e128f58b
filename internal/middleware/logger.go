package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ratepulse/internal/logger"
)

// RequestLogger logs method, path, status, latency, client IP and the
// request ID (when RequestID() ran earlier in the chain) as one
// structured line per request.
//
// Example output:
//
//	request_id=123e4567... method=GET path=/api/v1/rates status=200 latency_ms=15
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		rid, _ := c.Get(RequestIDKey)
		logger.L().Info().
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
