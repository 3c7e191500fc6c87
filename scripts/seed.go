package main

import (
	"errors"
	"log"

	"github.com/KubeerVignesh/angular-21/config"
	"github.com/KubeerVignesh/angular-21/database"
	"github.com/KubeerVignesh/angular-21/models"
	"github.com/KubeerVignesh/angular-21/repositories"
	"github.com/KubeerVignesh/angular-21/utils"
	"gorm.io/gorm"
)

var demoProducts = []models.Product{
	{
		Name:        "Wireless Bluetooth Headphones",
		Description: "High-quality wireless headphones with noise cancellation and 20-hour battery life.",
		Price:       89.99,
		Category:    "Electronics",
		Stock:       50,
		ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&q=80",
	},
	{
		Name:        "Smart Watch Series 5",
		Description: "Track your fitness, heart rate, and notifications with this sleek smart watch.",
		Price:       199.99,
		Category:    "Electronics",
		Stock:       30,
		ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&q=80",
	},
	{
		Name:        "Premium Coffee Maker",
		Description: "Brew the perfect cup of coffee every morning with this programmable coffee maker.",
		Price:       49.99,
		Category:    "Home & Kitchen",
		Stock:       20,
		ImageURL:    "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=500&q=80",
	},
	{
		Name:        "Running Shoes",
		Description: "Lightweight and comfortable running shoes for your daily jog or marathon training.",
		Price:       75.00,
		Category:    "Sports",
		Stock:       100,
		ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&q=80",
	},
	{
		Name:        "Leather Wallet",
		Description: "Genuine leather wallet with multiple card slots and a sleek design.",
		Price:       29.99,
		Category:    "Fashion",
		Stock:       75,
		ImageURL:    "https://images.unsplash.com/photo-1627123424574-181ce5171c98?w=500&q=80",
	},
	{
		Name:        "4K Ultra HD Monitor",
		Description: "Experience crystal clear visuals with this 27-inch 4K monitor.",
		Price:       349.99,
		Category:    "Electronics",
		Stock:       15,
		ImageURL:    "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=500&q=80",
	},
	{
		Name:        "Ergonomic Office Chair",
		Description: "Work in comfort with this adjustable ergonomic office chair with lumbar support.",
		Price:       129.99,
		Category:    "Furniture",
		Stock:       10,
		ImageURL:    "https://images.unsplash.com/photo-1592078615290-033ee584e267?w=500&q=80",
	},
	{
		Name:        "Yoga Mat",
		Description: "Non-slip yoga mat for all your fitness and meditation needs.",
		Price:       19.99,
		Category:    "Sports",
		Stock:       60,
		ImageURL:    "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500&q=80",
	},
}

func main() {
	log.Println("Starting database seed...")

	config.LoadEnv()
	database.Initialize()

	users := repositories.NewUserRepository()
	products := repositories.NewProductRepository()

	// Admin account for catalog maintenance
	adminEmail := config.GetEnv("SEED_ADMIN_EMAIL", "admin@example.com")
	if _, err := users.FindByEmail(adminEmail); errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, err := utils.HashPassword(config.GetEnv("SEED_ADMIN_PASSWORD", "admin123"))
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}

		if _, err := users.Create(models.User{
			Name:     "Admin",
			Email:    adminEmail,
			Password: hashed,
			Role:     models.RoleAdmin,
		}); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s", adminEmail)
	} else if err != nil {
		log.Fatalf("Failed to look up admin user: %v", err)
	} else {
		log.Printf("Admin user %s already exists, skipping", adminEmail)
	}

	created := 0
	for _, product := range demoProducts {
		if _, err := products.FindByName(product.Name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to look up product %q: %v", product.Name, err)
		}

		if _, err := products.Create(product); err != nil {
			log.Fatalf("Failed to create product %q: %v", product.Name, err)
		}
		created++
	}

	log.Printf("✅ Seed completed: %d new products", created)
}
