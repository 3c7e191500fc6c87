package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/KubeerVignesh/angular-21/api/v1"
	"github.com/KubeerVignesh/angular-21/config"
	"github.com/KubeerVignesh/angular-21/database"
	"github.com/KubeerVignesh/angular-21/repositories"
	"github.com/KubeerVignesh/angular-21/services"
)

func main() {
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	database.Initialize()

	// The signing secret is read once here and handed to the token
	// service; rotating it invalidates all outstanding tokens
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set in environment")
	}

	tokens := services.NewTokenService(secret, config.GetEnvAsDuration("JWT_EXPIRE", 30*24*time.Hour))
	auth := services.NewAuthService(repositories.NewUserRepository(), tokens)
	products := services.NewProductService(repositories.NewProductRepository())

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	v1.RegisterRoutes(router, auth, tokens, products)

	port := config.GetEnv("PORT", "5000")

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server running on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for SIGINT/SIGTERM and shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
