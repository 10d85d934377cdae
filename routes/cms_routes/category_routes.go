package cms_routes

import (
	"time"

	"github.com/Fletushka-Katalog/fletushka-gateway/controllers/cms/category_controller"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")
	category.Use(middleware.AuthMiddleware())
	category.Use(middleware.RateLimiter(120, time.Minute))

	// ════════════════════════════════════════════════════════════
	// Reads
	// ════════════════════════════════════════════════════════════
	category.GET("", category_controller.GetCategories)
	category.GET("/tree", category_controller.GetCategoryTree)
	category.GET("/root", category_controller.GetRootCategories)
	category.GET("/search", category_controller.SearchCategories)
	category.GET("/:id", category_controller.GetCategoryByID)

	// ════════════════════════════════════════════════════════════
	// Writes
	// ════════════════════════════════════════════════════════════
	category.POST("", category_controller.CreateCategory)
	category.PUT("/:id", category_controller.UpdateCategory)
	category.DELETE("/:id", category_controller.DeleteCategory)
	category.PATCH("/:id/activate", category_controller.ToggleCategoryStatus)
}
