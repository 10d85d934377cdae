package middleware

import (
	"net/http"
	"strings"

	"github.com/Fletushka-Katalog/fletushka-gateway/config"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the caller's upstream bearer token, from the
// session cookie first, then the Authorization header. The token itself
// is never minted here — the backend issued it at login; the gateway
// just forwards it on every relayed call.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Try the session cookie first
		cookieToken, err := c.Cookie(config.SessionCookieName)
		if err == nil && cookieToken != "" {
			claims, err := services.GetJWTService().VerifySessionJWT(cookieToken)
			if err != nil {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired session"))
				c.Abort()
				return
			}

			session, err := services.GetSessionService().GetSession(c.Request.Context(), claims.SessionID)
			if err != nil {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Session expired, please log in again"))
				c.Abort()
				return
			}

			c.Set("sessionID", session.ID)
			c.Set("upstreamToken", session.Token)
			c.Set("userEmail", session.User.Email)
			c.Next()
			return
		}

		// Fallback to Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
			c.Abort()
			return
		}

		c.Set("upstreamToken", parts[1])
		c.Next()
	}
}

// GetUpstreamToken returns the bearer token resolved by AuthMiddleware.
func GetUpstreamToken(c *gin.Context) string {
	token, exists := c.Get("upstreamToken")
	if !exists {
		return ""
	}
	return token.(string)
}

// GetSessionID returns the gateway session id, if the caller used the
// cookie path.
func GetSessionID(c *gin.Context) (string, bool) {
	id, exists := c.Get("sessionID")
	if !exists {
		return "", false
	}
	return id.(string), true
}
