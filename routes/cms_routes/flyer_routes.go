package cms_routes

import (
	"time"

	"github.com/Fletushka-Katalog/fletushka-gateway/controllers/cms/flyer_controller"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/gin-gonic/gin"
)

func SetupFlyerRoutes(rg *gin.RouterGroup) {
	flyer := rg.Group("/product-flyers")
	flyer.Use(middleware.AuthMiddleware())
	flyer.Use(middleware.RateLimiter(120, time.Minute))

	// ════════════════════════════════════════════════════════════
	// Reads
	// ════════════════════════════════════════════════════════════
	flyer.GET("", flyer_controller.GetFlyers)
	flyer.GET("/published", flyer_controller.GetPublishedFlyers)
	flyer.GET("/search", flyer_controller.SearchFlyers)
	flyer.GET("/:id", flyer_controller.GetFlyerByID)
	flyer.GET("/:id/products", flyer_controller.GetFlyerProducts)
	flyer.GET("/:id/products/page/:page", flyer_controller.GetFlyerProductByPage)
	flyer.GET("/:id/eligibility", flyer_controller.GetEligibility)

	// ════════════════════════════════════════════════════════════
	// Writes
	// ════════════════════════════════════════════════════════════
	flyer.POST("", flyer_controller.CreateFlyer)
	flyer.PUT("/:id", flyer_controller.UpdateFlyer)
	flyer.DELETE("/:id", flyer_controller.DeleteFlyer)
	flyer.PATCH("/:id/publish", flyer_controller.TogglePublish)
	flyer.PATCH("/:id/activate", flyer_controller.ToggleActivate)
}
