package auth_controller

import (
	"log"
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/config"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// RefreshToken godoc
// @Summary Refresh the upstream bearer token
// @Description Relay the refresh to the backend, store the new token in the gateway session, restart the session TTL and re-issue the cookie.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AuthData}
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/auth/refresh [post]
func RefreshToken(c *gin.Context) {
	token := middleware.GetUpstreamToken(c)

	var data models.AuthData
	message, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodPost, "/auth/refresh", token, nil, &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	// Cookie callers get their session record rolled over; header callers
	// just receive the new token in the body.
	if sid, ok := middleware.GetSessionID(c); ok {
		if _, err := services.GetSessionService().RefreshSession(c.Request.Context(), sid, data.Token); err != nil {
			log.Printf("[auth.refresh] failed to refresh session: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}

		cookieToken, err := services.GetJWTService().GenerateSessionJWT(sid, data.User.Email, config.SessionTTL)
		if err != nil {
			log.Printf("[auth.refresh] failed to sign session cookie: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(config.SessionCookieName, cookieToken, int(config.SessionTTL.Seconds()), "/", "", false, true)
	}

	if message == "" {
		message = "Token refreshed"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, data))
}
