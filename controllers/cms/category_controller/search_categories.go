package category_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// SearchCategories godoc
// @Summary Search categories
// @Tags CMS - Categories
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/categories/search [get]
func SearchCategories(c *gin.Context) {
	if c.Query("q") == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Search term is required"))
		return
	}

	query := utils.PickQuery(c, "q", "page", "limit")

	var data models.CategoryListData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/categories/search", query, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Search results fetched", data.Categories, data.Pagination))
}
