package brand_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// GetActiveBrands godoc
// @Summary Active brands
// @Description Brands currently marked active, for dropdowns and pickers.
// @Tags CMS - Brands
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/brands/active [get]
func GetActiveBrands(c *gin.Context) {
	var data models.BrandListData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/brands/active", nil, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	utils.RewriteBrands(data.Brands)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Active brands fetched", data.Brands))
}

// GetBrandCountries godoc
// @Summary Countries with at least one brand
// @Tags CMS - Brands
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/brands/countries [get]
func GetBrandCountries(c *gin.Context) {
	var data models.CountriesData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/brands/countries", nil, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Countries fetched", data.Countries))
}
