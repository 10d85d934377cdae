package product_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary List products
// @Description Relay the product listing with its filters intact.
// @Tags CMS - Products
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param category query string false "Filter by category ID"
// @Param brand query string false "Filter by brand ID"
// @Param productFlyer query string false "Filter by flyer ID"
// @Param isActive query bool false "Filter by active flag"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/products [get]
func GetProducts(c *gin.Context) {
	query := utils.PickQuery(c, "page", "limit", "sort", "order", "category", "brand", "productFlyer", "isActive", "minPrice", "maxPrice")

	var data models.ProductListData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/products", query, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	utils.RewriteProducts(data.Products)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched", data.Products, data.Pagination))
}
