package auth_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// GetProfile godoc
// @Summary Current admin profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.UserData}
// @Failure 401 {object} models.ApiResponse
// @Router /api/v1/auth/profile [get]
func GetProfile(c *gin.Context) {
	var data models.UserData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/auth/profile", nil, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched", data))
}
