package brand_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// SearchBrands godoc
// @Summary Search brands
// @Tags CMS - Brands
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/brands/search [get]
func SearchBrands(c *gin.Context) {
	if c.Query("q") == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Search term is required"))
		return
	}

	query := utils.PickQuery(c, "q", "page", "limit", "country")

	var data models.BrandListData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/brands/search", query, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	utils.RewriteBrands(data.Brands)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Search results fetched", data.Brands, data.Pagination))
}
