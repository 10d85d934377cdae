package category_controller

import (
	"net/http"

	lookup_cache "github.com/Fletushka-Katalog/fletushka-gateway/cache"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// ToggleCategoryStatus godoc
// @Summary Activate or deactivate a category
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param toggle body models.ToggleActivateRequest true "Desired active state"
// @Success 200 {object} models.ApiResponse{data=models.CategoryData}
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/categories/{id}/activate [patch]
func ToggleCategoryStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.ToggleActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "isActive is required"))
		return
	}

	var data models.CategoryData
	message, err := services.GetUpstreamClient().SendJSON(c.Request.Context(), http.MethodPatch, "/categories/"+id+"/activate", middleware.GetUpstreamToken(c), req, &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	lookup_cache.InvalidateCategories()
	if message == "" {
		message = "Category status updated"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, data))
}
