package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"krishimitra-backend/internal/model"
)

// CORS allows cross-origin calls from the chatbot frontend. Production
// should sit behind a gateway that restricts origins further.
func (m Middleware) CORS() gin.HandlerFunc {
	allowOrigin := "*"
	if m.environment == string(model.EnvironmentProduction) {
		allowOrigin = ""
	}

	return func(c *gin.Context) {
		if allowOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
