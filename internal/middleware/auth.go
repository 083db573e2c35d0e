package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hirepath/hirepath/internal/auth"
)

const identityKey = "caller_id"

// TokenCookie is the cookie the login handler sets and the gate reads.
const TokenCookie = "token"

// RequireAuth resolves the caller's identity before any registry is touched.
// The cookie is checked first, then the Authorization header. Missing,
// expired and tampered tokens all produce the same generic 401.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookie)
		if err != nil || token == "" {
			token = bearerToken(c.GetHeader("Authorization"))
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authentication token"})
			return
		}

		userID, err := auth.VerifyToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authentication token"})
			return
		}

		c.Set(identityKey, userID)
		c.Next()
	}
}

func bearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// CallerID returns the authenticated user id set by RequireAuth.
func CallerID(c *gin.Context) string {
	return c.GetString(identityKey)
}
