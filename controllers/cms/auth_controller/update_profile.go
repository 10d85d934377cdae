package auth_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// UpdateProfile godoc
// @Summary Update the current admin profile
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.UserData}
// @Router /api/v1/auth/profile [put]
func UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	var data models.UserData
	message, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodPut, "/auth/profile", middleware.GetUpstreamToken(c), req, &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	if message == "" {
		message = "Profile updated successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, data))
}
