package brand_controller

import (
	"net/http"

	lookup_cache "github.com/Fletushka-Katalog/fletushka-gateway/cache"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// GetBrands godoc
// @Summary List brands
// @Description Relay the brand listing. The unfiltered lookup (no query parameters) is served from a short-lived cache.
// @Tags CMS - Brands
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param isActive query bool false "Filter by active flag"
// @Param country query string false "Filter by country"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/brands [get]
func GetBrands(c *gin.Context) {
	bare := len(c.Request.URL.Query()) == 0

	if bare {
		if cached, ok := lookup_cache.GetBrands(); ok {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Brands fetched", cached))
			return
		}
	}

	query := utils.PickQuery(c, "page", "limit", "sort", "order", "isActive", "country")

	var data models.BrandListData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/brands", query, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	utils.RewriteBrands(data.Brands)
	if bare {
		lookup_cache.SetBrands(data.Brands)
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Brands fetched", data.Brands, data.Pagination))
}
