package category_controller

import (
	"net/http"

	lookup_cache "github.com/Fletushka-Katalog/fletushka-gateway/cache"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// CreateCategory godoc
// @Summary Create a category
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param category body models.CreateCategoryRequest true "Category fields"
// @Success 201 {object} models.ApiResponse{data=models.CategoryData}
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	var data models.CategoryData
	message, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodPost, "/categories", middleware.GetUpstreamToken(c), req, &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	lookup_cache.InvalidateCategories()
	if message == "" {
		message = "Category created successfully"
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, message, data))
}
