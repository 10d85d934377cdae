package product_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Tags CMS - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	message, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodDelete, "/products/"+id, middleware.GetUpstreamToken(c), nil, nil)
	if err != nil {
		failUpstream(c, err)
		return
	}

	if message == "" {
		message = "Product deleted successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, nil))
}
