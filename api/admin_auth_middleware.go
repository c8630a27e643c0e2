package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminAuth guards the admin endpoints with a shared API key. An empty
// configured key rejects everything rather than opening the surface up.
func AdminAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("X-Admin-Key")

		if len(apiKey) == 0 || len(provided) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}
	}
}
