package flyer_controller

import (
	"net/http"
	"sort"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// GetFlyerProducts godoc
// @Summary List the products of a flyer
// @Description Products come back ordered by page number ascending, which defines presentation order within the flyer.
// @Tags CMS - Flyers
// @Produce json
// @Param id path string true "Flyer ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/product-flyers/{id}/products [get]
func GetFlyerProducts(c *gin.Context) {
	id := c.Param("id")
	query := utils.PickQuery(c, "page", "limit")

	var data models.ProductListData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/product-flyers/"+id+"/products", query, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	sort.SliceStable(data.Products, func(i, j int) bool {
		return data.Products[i].PageNumber < data.Products[j].PageNumber
	})
	utils.RewriteProducts(data.Products)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Flyer products fetched", data.Products, data.Pagination))
}

// GetFlyerProductByPage godoc
// @Summary Get the product at a given flyer page
// @Tags CMS - Flyers
// @Produce json
// @Param id path string true "Flyer ID"
// @Param page path int true "Page number"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/product-flyers/{id}/products/page/{page} [get]
func GetFlyerProductByPage(c *gin.Context) {
	id := c.Param("id")
	page := c.Param("page")

	var data models.ProductData
	// The backend addresses flyer pages directly under /products/{page}.
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/product-flyers/"+id+"/products/"+page, nil, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	utils.RewriteProduct(&data.Product)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Flyer product fetched", data))
}
