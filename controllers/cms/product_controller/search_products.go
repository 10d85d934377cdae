package product_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// SearchProducts godoc
// @Summary Search products
// @Description Full-text search with the same filters the listing supports.
// @Tags CMS - Products
// @Produce json
// @Param q query string true "Search term"
// @Param category query string false "Filter by category ID"
// @Param brand query string false "Filter by brand ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/products/search [get]
func SearchProducts(c *gin.Context) {
	if c.Query("q") == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Search term is required"))
		return
	}

	query := utils.PickQuery(c, "q", "page", "limit", "category", "brand", "minPrice", "maxPrice")

	var data models.ProductListData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/products/search/advanced", query, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	utils.RewriteProducts(data.Products)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Search results fetched", data.Products, data.Pagination))
}
