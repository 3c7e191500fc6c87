package v1

import (
	"time"

	"github.com/KubeerVignesh/angular-21/config"
	"github.com/KubeerVignesh/angular-21/middleware"
	"github.com/KubeerVignesh/angular-21/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.Engine, auth *services.AuthService, tokens *services.TokenService, products *services.ProductService) {
	router.GET("/", APIIndex)

	// Lenient limiter for the whole API surface
	apiLimiter := middleware.NewRateLimiter(
		config.GetEnvAsDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		config.GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100),
		"Too many requests from this IP, please try again after 15 minutes",
	)

	// Stricter limiter on signup/login to blunt credential stuffing
	authLimiter := middleware.NewRateLimiter(
		config.GetEnvAsDuration("AUTH_RATE_LIMIT_WINDOW", 10*time.Minute),
		config.GetEnvAsInt("AUTH_RATE_LIMIT_MAX_REQUESTS", 10),
		"Too many login/signup attempts, please try again after 10 minutes",
	)

	api := router.Group("/api", apiLimiter.Middleware())
	api.GET("/health", HealthCheck)

	authController := NewAuthController(auth)
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authLimiter.Middleware(), authController.Signup)
		authGroup.POST("/login", authLimiter.Middleware(), authController.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(tokens), authController.GetMe)
		authGroup.PUT("/updatedetails", middleware.AuthMiddleware(tokens), authController.UpdateDetails)
	}

	productController := NewProductController(products)
	productGroup := api.Group("/products")
	{
		productGroup.GET("", productController.List)
		productGroup.GET("/:id", productController.Get)
		productGroup.POST("", middleware.AuthMiddleware(tokens), productController.Create)
		productGroup.PUT("/:id", middleware.AuthMiddleware(tokens), productController.Update)
		productGroup.DELETE("/:id", middleware.AuthMiddleware(tokens), middleware.RequireAdmin(auth), productController.Delete)
	}
}
