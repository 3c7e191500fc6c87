package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "angular-21-backend",
		"version":   "1.0.0",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// APIIndex lists the available endpoints at the root route
func APIIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "API is running...",
		"endpoints": gin.H{
			"auth": gin.H{
				"signup":        "POST /api/auth/signup",
				"login":         "POST /api/auth/login",
				"getMe":         "GET /api/auth/me (Protected)",
				"updateDetails": "PUT /api/auth/updatedetails (Protected)",
			},
			"products": gin.H{
				"getAll": "GET /api/products",
				"getOne": "GET /api/products/:id",
				"create": "POST /api/products (Protected)",
				"update": "PUT /api/products/:id (Protected)",
				"delete": "DELETE /api/products/:id (Admin)",
			},
		},
	})
}
