package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key under which the request ID is
// stored for downstream handlers and the request logger.
const RequestIDKey = "request_id"

// RequestID injects a UUID per incoming request, stores it in the gin
// context and echoes it back in the X-Request-ID response header so
// client reports can be correlated with logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
