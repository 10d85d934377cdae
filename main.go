// @title Fletushka Admin Gateway API
// @version 1.0
// @description Admin gateway for the Fletushka catalog backend: session handling, publish gating and image delivery for the dashboard.
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Fletushka-Katalog/fletushka-gateway/config"
	"github.com/Fletushka-Katalog/fletushka-gateway/controllers/cms/image_controller"
	_ "github.com/Fletushka-Katalog/fletushka-gateway/docs"
	"github.com/Fletushka-Katalog/fletushka-gateway/routes/cms_routes"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	config.InitConfig()

	if config.BackendURL == "" {
		log.Fatal("❌ BACKEND_URL environment variable not set")
	}

	// Redis connection (sessions + rate limiting)
	config.ConnectRedis()

	// ✅ Initialize JWT Service for session cookies
	if config.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(config.JWTSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Upstream catalog backend client
	if err := services.InitUpstreamClient(config.BackendURL); err != nil {
		log.Fatalf("Failed to initialize upstream client: %v", err)
	}
	log.Printf("✅ Upstream client ready (%s)", config.BackendURL)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Image delivery sits outside the versioned API so stored relative
	// paths like /api/images/flyers/abc.jpg resolve as-is.
	router.GET("/api/images/*path", image_controller.ProxyImage)

	// Register API routes
	api := router.Group("/api/v1")

	cms_routes.SetupAuthRoutes(api)
	cms_routes.SetupFlyerRoutes(api)
	cms_routes.SetupCategoryRoutes(api)
	cms_routes.SetupBrandRoutes(api)
	cms_routes.SetupProductRoutes(api)
	log.Println("✅ CMS routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:" + config.Port)
	router.Run(":" + config.Port)
}
