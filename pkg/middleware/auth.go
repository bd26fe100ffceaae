package middleware

import (
	"net/http"
	"strings"

	"microblog/internal/entity"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// TokenResolver maps a bearer token to the user it identifies.
type TokenResolver interface {
	ResolveToken(token string) (*entity.User, error)
}

// RequireAuth rejects requests without a resolvable bearer token.
func RequireAuth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid scheme"})
			c.Abort()
			return
		}

		user, err := resolver.ResolveToken(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid bearer token is present
// and treats everything else as anonymous.
func OptionalAuth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, bearerPrefix) {
			if user, err := resolver.ResolveToken(strings.TrimPrefix(authHeader, bearerPrefix)); err == nil {
				c.Set("user_id", user.ID)
				c.Set("username", user.Username)
			}
		}
		c.Next()
	}
}
