package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"
const contextKeyRequestID = "request_id"

// RequestID assigns each request an id, honoring one supplied by the caller,
// and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(contextKeyRequestID, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// GetRequestID retrieves the current request id from context
func GetRequestID(c *gin.Context) (string, bool) {
	id, exists := c.Get(contextKeyRequestID)
	if !exists {
		return "", false
	}

	s, ok := id.(string)
	return s, ok
}
