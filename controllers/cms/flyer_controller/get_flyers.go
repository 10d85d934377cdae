package flyer_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// GetFlyers godoc
// @Summary List flyers
// @Description Relay the paginated, filterable flyer listing from the backend
// @Tags CMS - Flyers
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param isActive query bool false "Filter by active flag"
// @Param isPublished query bool false "Filter by publish flag"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/product-flyers [get]
func GetFlyers(c *gin.Context) {
	query := utils.PickQuery(c, "page", "limit", "sort", "order", "isActive", "isPublished", "category", "brand")

	var data models.FlyerListData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/product-flyers", query, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	utils.RewriteFlyers(data.Flyers)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Flyers fetched", data.Flyers, data.Pagination))
}
