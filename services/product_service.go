package services

import (
	"github.com/KubeerVignesh/angular-21/dto"
	"github.com/KubeerVignesh/angular-21/models"
	"github.com/KubeerVignesh/angular-21/repositories"
)

// ProductService orchestrates catalog operations
type ProductService struct {
	products *repositories.ProductRepository
}

// NewProductService creates a product service backed by the given repository
func NewProductService(products *repositories.ProductRepository) *ProductService {
	return &ProductService{
		products: products,
	}
}

// List retrieves all catalog products
func (s *ProductService) List() ([]models.Product, error) {
	return s.products.FindAll()
}

// Get retrieves a single product by ID
func (s *ProductService) Get(id string) (models.Product, error) {
	return s.products.FindByID(id)
}

// Create adds a new product to the catalog
func (s *ProductService) Create(req dto.CreateProductRequest) (models.Product, error) {
	return s.products.Create(models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	})
}

// Update applies a partial update to a product
func (s *ProductService) Update(id string, req dto.UpdateProductRequest) (models.Product, error) {
	fields := map[string]interface{}{}

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Stock != nil {
		fields["stock"] = *req.Stock
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}

	if len(fields) == 0 {
		return s.products.FindByID(id)
	}

	return s.products.UpdateFields(id, fields)
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(id string) error {
	if _, err := s.products.FindByID(id); err != nil {
		return err
	}
	return s.products.Delete(id)
}
