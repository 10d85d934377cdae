package cms_routes

import (
	"time"

	"github.com/Fletushka-Katalog/fletushka-gateway/controllers/cms/auth_controller"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	auth.POST("/login", middleware.RateLimiter(10, time.Minute), auth_controller.Login)
	auth.POST("/register", middleware.RateLimiter(5, time.Minute), auth_controller.Register)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Session Required)
	// ════════════════════════════════════════════════════════════
	protected := auth.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", auth_controller.Logout)
		protected.POST("/refresh", auth_controller.RefreshToken)
		protected.GET("/profile", auth_controller.GetProfile)
		protected.PUT("/profile", auth_controller.UpdateProfile)
	}
}
