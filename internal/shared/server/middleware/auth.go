package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"causematch-backend/internal/shared/auth"
	"causematch-backend/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"

	// AuthCookieName is the HttpOnly cookie carrying the session token.
	AuthCookieName = "auth-token"
)

var publicPaths = map[string]struct{}{
	"/api/v1/health":        {},
	"/api/v1/auth/register": {},
	"/api/v1/auth/login":    {},
}

// Auth validates session tokens and stores identity in context. Tokens are
// read from the auth cookie first, then from a bearer Authorization header
// for non-cookie clients.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		if _, ok := publicPaths[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		token := tokenFromRequest(c)
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, respond.CodeUnauthorized, "Unauthorized. Please log in.", nil)
			return
		}

		claims, err := auth.Verify(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, respond.CodeUnauthorized, "Unauthorized. Please log in.", nil)
			return
		}

		c.Set(userIDKey, claims.Subject)
		if claims.Email != "" {
			c.Set(userEmailKey, claims.Email)
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && strings.TrimSpace(cookie) != "" {
		return strings.TrimSpace(cookie)
	}

	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
	}
	return ""
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// UserEmailFromContext fetches the user email set by the auth middleware.
func UserEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}
