package repositories

import (
	"github.com/KubeerVignesh/angular-21/database"
	"github.com/KubeerVignesh/angular-21/models"
)

// ProductRepository handles database operations for catalog products
type ProductRepository struct{}

// NewProductRepository creates a new product repository instance
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindAll retrieves all products
func (r *ProductRepository) FindAll() ([]models.Product, error) {
	var products []models.Product
	result := database.DB.Order("created_at DESC").Find(&products)
	return products, result.Error
}

// FindByID retrieves a product by its ID
func (r *ProductRepository) FindByID(id string) (models.Product, error) {
	var product models.Product
	result := database.DB.First(&product, "id = ?", id)
	return product, result.Error
}

// FindByName retrieves a product by its exact name
func (r *ProductRepository) FindByName(name string) (models.Product, error) {
	var product models.Product
	result := database.DB.Where("name = ?", name).First(&product)
	return product, result.Error
}

// Create inserts a new product into the database
func (r *ProductRepository) Create(product models.Product) (models.Product, error) {
	result := database.DB.Create(&product)
	return product, result.Error
}

// UpdateFields applies a partial update to a product and returns the fresh record
func (r *ProductRepository) UpdateFields(id string, fields map[string]interface{}) (models.Product, error) {
	if err := database.DB.Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return models.Product{}, err
	}
	return r.FindByID(id)
}

// Delete removes a product from the database (soft delete)
func (r *ProductRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Product{}, "id = ?", id)
	return result.Error
}
