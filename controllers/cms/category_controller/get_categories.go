package category_controller

import (
	"net/http"

	lookup_cache "github.com/Fletushka-Katalog/fletushka-gateway/cache"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary List categories
// @Description Relay the category listing. The unfiltered lookup (no query parameters) is served from a short-lived cache.
// @Tags CMS - Categories
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param isActive query bool false "Filter by active flag"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/categories [get]
func GetCategories(c *gin.Context) {
	bare := len(c.Request.URL.Query()) == 0

	if bare {
		if cached, ok := lookup_cache.GetCategories(); ok {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched", cached))
			return
		}
	}

	query := utils.PickQuery(c, "page", "limit", "sort", "order", "isActive", "parentCategory")

	var data models.CategoryListData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/categories", query, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	if bare {
		lookup_cache.SetCategories(data.Categories)
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Categories fetched", data.Categories, data.Pagination))
}
