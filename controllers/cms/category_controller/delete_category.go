package category_controller

import (
	"net/http"

	lookup_cache "github.com/Fletushka-Katalog/fletushka-gateway/cache"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Tags CMS - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	message, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodDelete, "/categories/"+id, middleware.GetUpstreamToken(c), nil, nil)
	if err != nil {
		failUpstream(c, err)
		return
	}

	lookup_cache.InvalidateCategories()
	if message == "" {
		message = "Category deleted successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, nil))
}
