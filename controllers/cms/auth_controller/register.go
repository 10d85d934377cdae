package auth_controller

import (
	"log"
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/config"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// Register godoc
// @Summary Register a new admin account
// @Description Relay registration to the backend and log the new account in, mirroring Login's session handling.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body models.RegisterRequest true "New account fields"
// @Success 201 {object} models.ApiResponse{data=models.AuthData}
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	var data models.AuthData
	message, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodPost, "/auth/register", "", req, &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	session, err := services.GetSessionService().CreateSession(
		c.Request.Context(),
		data.User,
		data.Token,
		c.ClientIP(),
		c.Request.UserAgent(),
	)
	if err != nil {
		log.Printf("[auth.register] failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	cookieToken, err := services.GetJWTService().GenerateSessionJWT(session.ID, data.User.Email, config.SessionTTL)
	if err != nil {
		log.Printf("[auth.register] failed to sign session cookie: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.SessionCookieName, cookieToken, int(config.SessionTTL.Seconds()), "/", "", false, true)

	log.Printf("[auth.register] success: %s", data.User.Email)

	if message == "" {
		message = "Registration successful"
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, message, data))
}
