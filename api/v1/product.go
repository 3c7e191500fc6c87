package v1

import (
	"net/http"

	"github.com/KubeerVignesh/angular-21/dto"
	"github.com/KubeerVignesh/angular-21/services"
	"github.com/gin-gonic/gin"
)

// ProductController exposes the catalog endpoints
type ProductController struct {
	products *services.ProductService
}

// NewProductController creates a new product controller instance
func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// List returns all catalog products
func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.products.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(products),
		"data":    gin.H{"products": products},
	})
}

// Get returns a single product by ID
func (ctl *ProductController) Get(c *gin.Context) {
	product, err := ctl.products.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"product": product},
	})
}

// Create adds a new product to the catalog
func (ctl *ProductController) Create(c *gin.Context) {
	var req dto.CreateProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide a valid product name and price",
		})
		return
	}

	product, err := ctl.products.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product created successfully",
		"data":    gin.H{"product": product},
	})
}

// Update applies a partial update to a product
func (ctl *ProductController) Update(c *gin.Context) {
	var req dto.UpdateProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	product, err := ctl.products.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"product": product},
	})
}

// Delete removes a product from the catalog
func (ctl *ProductController) Delete(c *gin.Context) {
	if err := ctl.products.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully",
	})
}
