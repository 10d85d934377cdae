package flyer_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// DeleteFlyer godoc
// @Summary Delete a flyer
// @Tags CMS - Flyers
// @Produce json
// @Param id path string true "Flyer ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/product-flyers/{id} [delete]
func DeleteFlyer(c *gin.Context) {
	id := c.Param("id")

	message, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodDelete, "/product-flyers/"+id, middleware.GetUpstreamToken(c), nil, nil)
	if err != nil {
		failUpstream(c, err)
		return
	}

	if message == "" {
		message = "Flyer deleted successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, nil))
}
