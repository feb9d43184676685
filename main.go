// @title VibeCart API
// @version 1.0
// @description VibeCart storefront and admin console backend. All data is an in-memory demo dataset; nothing persists beyond the theme flag.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/VibeCart-Commerce/vibecart-backend/catalog"
	"github.com/VibeCart-Commerce/vibecart-backend/config"
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/auth_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/cart_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/filter_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/product_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/theme_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/user_controller/order_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/wishlist_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/dataset"
	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/routes/cms_routes"
	"github.com/VibeCart-Commerce/vibecart-backend/routes/ecommerce_routes"
	"github.com/VibeCart-Commerce/vibecart-backend/services"
	"github.com/VibeCart-Commerce/vibecart-backend/session"

	cms_customer "github.com/VibeCart-Commerce/vibecart-backend/controllers/cms/customer_controller"
	cms_dashboard "github.com/VibeCart-Commerce/vibecart-backend/controllers/cms/dashboard_controller"
	cms_order "github.com/VibeCart-Commerce/vibecart-backend/controllers/cms/order_controller"
	cms_product "github.com/VibeCart-Commerce/vibecart-backend/controllers/cms/product_controller"

	_ "github.com/VibeCart-Commerce/vibecart-backend/docs"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Optional Redis (theme store, admin rate limiter)
	config.ConnectRedis()

	if err := services.InitJWTService(config.JWTSecret()); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// Load the static dataset and wire the components around it
	ds := dataset.Seed()
	engine := catalog.NewEngine(ds)
	manager := session.NewManager(session.NewThemeStore(config.RedisClient))
	log.Printf("✅ Dataset loaded (%d products)", ds.ProductCount())

	product_controller.Init(engine)
	filter_controller.Init(engine)
	cart_controller.Init(engine)
	wishlist_controller.Init(engine)
	auth_controller.Init(ds)
	theme_controller.Init(manager)
	order_controller.Init(ds)

	cms_dashboard.Init(ds)
	cms_product.Init(ds)
	cms_order.Init(ds)
	cms_customer.Init(ds)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")
	api.Use(middleware.SessionMiddleware(manager))

	ecommerce_routes.SetupStorefrontRoutes(api)
	ecommerce_routes.SetupAuthRoutes(api)
	ecommerce_routes.SetupSessionRoutes(api)
	ecommerce_routes.SetupUserRoutes(api)
	cms_routes.SetupAdminRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := config.Port()
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
