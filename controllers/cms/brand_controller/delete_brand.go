package brand_controller

import (
	"net/http"

	lookup_cache "github.com/Fletushka-Katalog/fletushka-gateway/cache"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// DeleteBrand godoc
// @Summary Delete a brand
// @Tags CMS - Brands
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/brands/{id} [delete]
func DeleteBrand(c *gin.Context) {
	id := c.Param("id")

	message, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodDelete, "/brands/"+id, middleware.GetUpstreamToken(c), nil, nil)
	if err != nil {
		failUpstream(c, err)
		return
	}

	lookup_cache.InvalidateBrands()
	if message == "" {
		message = "Brand deleted successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, nil))
}
