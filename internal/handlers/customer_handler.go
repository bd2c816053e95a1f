package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DamianMlM/yummy-bakery-web/internal/repository"
)

type CustomerHandler struct {
	customers repository.CustomerRepository
}

func NewCustomerHandler(customers repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// ListCustomers returns the directory, most recent order first.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	records, err := h.customers.GetAll()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": records})
}
