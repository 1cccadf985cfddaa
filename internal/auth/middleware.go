package auth

import (
	"net/http"
	"os"
	"strings"

	"codeberg.org/skillsprint/webfront/internal/gate"
	"codeberg.org/skillsprint/webfront/internal/logger"
	"codeberg.org/skillsprint/webfront/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "skillsprint_session"
	sidKey            = "sid"
)

// SessionMiddleware resolves the caller's browser session, minting a
// session ID on first contact, and places the matching store in context
// for the gate and handlers downstream.
func SessionMiddleware(manager *session.Manager, cookies *sessions.CookieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := cookies.Get(c.Request, sessionCookieName)
		if err != nil {
			// tampered or stale cookie; start a fresh session
			logger.Warn("unreadable session cookie, reissuing", "error", err)
		}

		sid, ok := cookie.Values[sidKey].(string)
		if !ok || sid == "" {
			sid = session.NewSessionID()
			cookie.Values[sidKey] = sid

			if err := cookie.Save(c.Request, c.Writer); err != nil {
				logger.ErrorErr(err, "failed to save session cookie")
			}
		}

		c.Set(sidKey, sid)
		c.Set(gate.ContextStoreKey, manager.Get(sid))

		c.Next()
	}
}

// creates the cookie store used for browser session IDs
func NewCookieStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))

	baseURL := os.Getenv("BASE_URL")

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   strings.HasPrefix(baseURL, "https://"),
		SameSite: http.SameSiteLaxMode,
	}

	return store
}

// validates JWT bearer tokens and adds user info to context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		token := parts[1]
		claims, err := ValidateJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// extracts user_id from context after AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")

	if !exists {
		return "", false
	}

	return userID.(string), true
}

// validates a JWT if present but doesn't require it
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")

		if len(parts) == 2 && parts[0] == "Bearer" {
			token := parts[1]
			claims, err := ValidateJWT(token)

			if err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("user_email", claims.Email)
				c.Set("user_role", claims.Role)
			}
		}

		c.Next()
	}
}
