package category_controller

import (
	"net/http"

	lookup_cache "github.com/Fletushka-Katalog/fletushka-gateway/cache"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// UpdateCategory godoc
// @Summary Update a category
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.CategoryData}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	var data models.CategoryData
	message, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodPut, "/categories/"+id, middleware.GetUpstreamToken(c), req, &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	lookup_cache.InvalidateCategories()
	if message == "" {
		message = "Category updated successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, data))
}
