package flyer_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// GetFlyerByID godoc
// @Summary Get a single flyer
// @Tags CMS - Flyers
// @Produce json
// @Param id path string true "Flyer ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/product-flyers/{id} [get]
func GetFlyerByID(c *gin.Context) {
	id := c.Param("id")

	var data models.FlyerData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/product-flyers/"+id, nil, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	utils.RewriteFlyer(&data.Flyer)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Flyer fetched", data))
}
