package middlewares

import (
	"log/slog"
	"strings"

	"civicsync-reporter/utils"

	"github.com/gin-gonic/gin"
)

// AuthCookie carries the JWT for browser clients
const AuthCookie = "auth_token"

// AuthMiddleware accepts a bearer token or the auth cookie and stores the
// caller's user ID under "user_id".
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			utils.InternalError(c, "JWT secret not configured")
			return
		}

		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			tokenString, _ = c.Cookie(AuthCookie)
		}
		if tokenString == "" {
			utils.Unauthorized(c, "No authorization token provided")
			return
		}

		userID, err := utils.ParseToken(tokenString, secret)
		if err != nil {
			slog.Debug("token validation failed", "error", err)
			utils.Unauthorized(c, "Invalid authorization token")
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
