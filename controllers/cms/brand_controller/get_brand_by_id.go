package brand_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// GetBrandByID godoc
// @Summary Fetch a single brand
// @Tags CMS - Brands
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} models.ApiResponse{data=models.BrandData}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/brands/{id} [get]
func GetBrandByID(c *gin.Context) {
	id := c.Param("id")

	var data models.BrandData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/brands/"+id, nil, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	utils.RewriteBrand(&data.Brand)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand fetched", data))
}
