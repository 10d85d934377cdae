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

// ToggleBrandStatus godoc
// @Summary Activate or deactivate a brand
// @Tags CMS - Brands
// @Accept json
// @Produce json
// @Param id path string true "Brand ID"
// @Param toggle body models.ToggleActivateRequest true "Desired active state"
// @Success 200 {object} models.ApiResponse{data=models.BrandData}
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/brands/{id}/activate [patch]
func ToggleBrandStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.ToggleActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "isActive is required"))
		return
	}

	var data models.BrandData
	message, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodPatch, "/brands/"+id+"/activate", middleware.GetUpstreamToken(c), req, &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	lookup_cache.InvalidateBrands()
	utils.RewriteBrand(&data.Brand)
	if message == "" {
		message = "Brand status updated"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, data))
}
