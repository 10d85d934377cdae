package cms_routes

import (
	"time"

	"github.com/Fletushka-Katalog/fletushka-gateway/controllers/cms/brand_controller"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/gin-gonic/gin"
)

func SetupBrandRoutes(rg *gin.RouterGroup) {
	brand := rg.Group("/brands")
	brand.Use(middleware.AuthMiddleware())
	brand.Use(middleware.RateLimiter(120, time.Minute))

	// ════════════════════════════════════════════════════════════
	// Reads
	// ════════════════════════════════════════════════════════════
	brand.GET("", brand_controller.GetBrands)
	brand.GET("/active", brand_controller.GetActiveBrands)
	brand.GET("/countries", brand_controller.GetBrandCountries)
	brand.GET("/search", brand_controller.SearchBrands)
	brand.GET("/:id", brand_controller.GetBrandByID)

	// ════════════════════════════════════════════════════════════
	// Writes
	// ════════════════════════════════════════════════════════════
	brand.POST("", brand_controller.CreateBrand)
	brand.PUT("/:id", brand_controller.UpdateBrand)
	brand.DELETE("/:id", brand_controller.DeleteBrand)
	brand.PATCH("/:id/activate", brand_controller.ToggleBrandStatus)
}
