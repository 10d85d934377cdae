package category_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// GetCategoryByID godoc
// @Summary Fetch a single category
// @Tags CMS - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse{data=models.CategoryData}
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	id := c.Param("id")

	var data models.CategoryData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/categories/"+id, nil, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched", data))
}
