package flyer_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// SearchFlyers godoc
// @Summary Search flyers
// @Tags CMS - Flyers
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/product-flyers/search [get]
func SearchFlyers(c *gin.Context) {
	query := utils.PickQuery(c, "q", "category", "brand")

	var data models.FlyerListData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/product-flyers/search", query, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	utils.RewriteFlyers(data.Flyers)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search results", data.Flyers))
}
