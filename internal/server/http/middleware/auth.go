package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// BearerTokenContextKey is a gin context key for the backend bearer token.
	BearerTokenContextKey = "bearerToken"
	// ShopperKeyContextKey is a gin context key for the derived cart owner key.
	ShopperKeyContextKey = "shopperKey"
	// AdminTokenHeader carries the locally issued admin session token.
	AdminTokenHeader = "X-Admin-Token"
)

// SessionKeys derives the local cart owner key from a backend bearer token.
type SessionKeys interface {
	ShopperKey(bearerToken string) string
}

// AdminVerifier validates locally issued admin session tokens.
type AdminVerifier interface {
	ParseAdminToken(token string) error
}

// AuthRequired ensures a backend bearer token is present and stores it,
// together with the derived shopper key, in the request context.
func AuthRequired(sessions SessionKeys) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(BearerTokenContextKey, token)
		c.Set(ShopperKeyContextKey, sessions.ShopperKey(token))
		c.Next()
	}
}

// AdminRequired ensures the request carries a valid admin session token.
func AdminRequired(verifier AdminVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AdminTokenHeader)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if err := verifier.ParseAdminToken(token); err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
