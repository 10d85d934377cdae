package product_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// UpdateProductQuantity godoc
// @Summary Adjust product stock
// @Description Add to, subtract from, or set the quantity on hand.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param quantity body models.UpdateQuantityRequest true "Quantity and operation"
// @Success 200 {object} models.ApiResponse{data=models.ProductData}
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/products/{id}/quantity [patch]
func UpdateProductQuantity(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	var data models.ProductData
	message, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodPatch, "/products/"+id+"/quantity", middleware.GetUpstreamToken(c), req, &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	utils.RewriteProduct(&data.Product)
	if message == "" {
		message = "Quantity updated"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, data))
}
