package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"krishimitra-backend/internal/model"
)

const headerRequestID = "X-Request-ID"

// RequestID assigns every request an ID, honoring one supplied by the
// caller, and echoes it on the response.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(model.ContextKeyRequestID, id)
		c.Writer.Header().Set(headerRequestID, id)
		c.Next()
	}
}
