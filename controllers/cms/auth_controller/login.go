package auth_controller

import (
	"log"
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/config"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// Login godoc
// @Summary Log in
// @Description Relay credentials to the backend; on success store the returned bearer token and profile in a gateway session and set the session cookie. The token and user are also returned in the body for clients that prefer the Authorization header.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AuthData}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func Login(c *gin.Context) {
	log.Printf("[auth.login] attempt")

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	var data models.AuthData
	message, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodPost, "/auth/login", "", req, &data)
	if err != nil {
		// The backend's rejection message passes through verbatim.
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
		log.Printf("[auth.login] failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	cookieToken, err := services.GetJWTService().GenerateSessionJWT(session.ID, data.User.Email, config.SessionTTL)
	if err != nil {
		log.Printf("[auth.login] failed to sign session cookie: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.SessionCookieName, cookieToken, int(config.SessionTTL.Seconds()), "/", "", false, true)

	log.Printf("[auth.login] success: %s", data.User.Email)

	if message == "" {
		message = "Login successful"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, data))
}
