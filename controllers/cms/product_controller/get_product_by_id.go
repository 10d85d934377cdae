package product_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// GetProductByID godoc
// @Summary Fetch a single product
// @Tags CMS - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.ProductData}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/products/{id} [get]
func GetProductByID(c *gin.Context) {
	id := c.Param("id")

	var data models.ProductData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/products/"+id, nil, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	utils.RewriteProduct(&data.Product)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched", data))
}
