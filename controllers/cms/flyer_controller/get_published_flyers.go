package flyer_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// GetPublishedFlyers godoc
// @Summary List published flyers only
// @Tags CMS - Flyers
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/product-flyers/published [get]
func GetPublishedFlyers(c *gin.Context) {
	query := utils.PickQuery(c, "page", "limit", "sort", "order", "category", "brand")

	var data models.FlyerListData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/product-flyers/published", query, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	utils.RewriteFlyers(data.Flyers)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Published flyers fetched", data.Flyers, data.Pagination))
}
