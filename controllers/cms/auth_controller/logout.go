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

// Logout godoc
// @Summary Log out
// @Description Best-effort logout upstream, then drop the gateway session and clear the cookie. Logout never fails from the dashboard's point of view.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/auth/logout [post]
func Logout(c *gin.Context) {
	token := middleware.GetUpstreamToken(c)

	if _, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodPost, "/auth/logout", token, nil, nil); err != nil {
		// Session still gets dropped locally.
		log.Printf("[auth.logout] upstream logout failed: %v", err)
	}

	if sid, ok := middleware.GetSessionID(c); ok {
		if err := services.GetSessionService().DeleteSession(c.Request.Context(), sid); err != nil {
			log.Printf("[auth.logout] failed to delete session: %v", err)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.SessionCookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
