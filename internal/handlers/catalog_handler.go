package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
	"github.com/DamianMlM/yummy-bakery-web/internal/store"
)

type CatalogHandler struct {
	catalog *store.FirestoreStore
}

func NewCatalogHandler(catalog *store.FirestoreStore) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Products

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.LoadProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *CatalogHandler) SaveProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if id := c.Param("id"); id != "" {
		product.ID = id
	}
	if product.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
		return
	}
	product.Active = true

	if err := h.catalog.SaveProduct(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Categories

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.LoadCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CatalogHandler) SaveCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if category.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}
	category.Active = true

	if err := h.catalog.SaveCategory(c.Request.Context(), &category); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory tombstones; historical orders keep resolving the slug.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalog.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

// Toppings

func (h *CatalogHandler) ListToppings(c *gin.Context) {
	toppings, err := h.catalog.LoadToppings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load toppings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"toppings": toppings})
}

func (h *CatalogHandler) SaveTopping(c *gin.Context) {
	var topping models.Topping
	if err := c.ShouldBindJSON(&topping); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if topping.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topping name is required"})
		return
	}
	topping.Active = true

	if err := h.catalog.SaveTopping(c.Request.Context(), &topping); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save topping"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"topping": topping})
}

func (h *CatalogHandler) DeleteTopping(c *gin.Context) {
	if err := h.catalog.DeleteTopping(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete topping"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
