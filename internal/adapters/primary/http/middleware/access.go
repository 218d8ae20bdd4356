package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenValidator reports whether a session token was minted by the
// access-code exchange.
type TokenValidator interface {
	Valid(token string) bool
}

// Access gates the reporting and vehicle-registration routes behind the
// X-Access-Token header.
func Access(sessions TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Access-Token")
		if token == "" || !sessions.Valid(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid access token"})
			return
		}
		c.Next()
	}
}
