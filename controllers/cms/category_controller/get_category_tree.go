package category_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// GetCategoryTree godoc
// @Summary Category tree
// @Description Categories nested under their parents, as the backend structures them.
// @Tags CMS - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/categories/tree [get]
func GetCategoryTree(c *gin.Context) {
	var data models.CategoryTreeData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/categories/tree", nil, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category tree fetched", data.Categories))
}

// GetRootCategories godoc
// @Summary Root categories
// @Description Categories without a parent.
// @Tags CMS - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/categories/root [get]
func GetRootCategories(c *gin.Context) {
	var data models.CategoryListData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/categories/root", nil, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Root categories fetched", data.Categories))
}
