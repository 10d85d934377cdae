package cms_routes

import (
	"time"

	"github.com/Fletushka-Katalog/fletushka-gateway/controllers/cms/product_controller"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.AuthMiddleware())
	product.Use(middleware.RateLimiter(120, time.Minute))

	// ════════════════════════════════════════════════════════════
	// Reads
	// ════════════════════════════════════════════════════════════
	product.GET("", product_controller.GetProducts)
	product.GET("/search", product_controller.SearchProducts)
	product.GET("/:id", product_controller.GetProductByID)

	// ════════════════════════════════════════════════════════════
	// Writes
	// ════════════════════════════════════════════════════════════
	product.POST("", product_controller.CreateProduct)
	product.PUT("/:id", product_controller.UpdateProduct)
	product.DELETE("/:id", product_controller.DeleteProduct)
	product.PATCH("/:id/quantity", product_controller.UpdateProductQuantity)
}
