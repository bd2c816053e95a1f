package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DamianMlM/yummy-bakery-web/internal/middlewares"
	"github.com/DamianMlM/yummy-bakery-web/internal/models"
	"github.com/DamianMlM/yummy-bakery-web/internal/reports"
	"github.com/DamianMlM/yummy-bakery-web/internal/services"
	"github.com/DamianMlM/yummy-bakery-web/internal/store"
)

type OrderHandler struct {
	feed      *services.Feed
	lifecycle services.LifecycleService
}

func NewOrderHandler(feed *services.Feed, lifecycle services.LifecycleService) *OrderHandler {
	return &OrderHandler{feed: feed, lifecycle: lifecycle}
}

// ListOrders returns the order collection for a date range. Cancelled
// orders are included: this is the historical list, and the excluding
// happens in the aggregates, not here. `all=1` skips the range filter.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.feed.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load orders"})
		return
	}

	if c.Query("all") == "1" {
		c.JSON(http.StatusOK, gin.H{"orders": orders})
		return
	}

	rng := parseRange(c)
	filtered := reports.Filter(orders, rng)
	c.JSON(http.StatusOK, gin.H{
		"orders":     filtered,
		"start":      rng.Start.Format(dayLayout),
		"end":        rng.End.Format(dayLayout),
		"single_day": rng.IsSingleDay(),
	})
}

type createOrderRequest struct {
	Customer      models.Customer   `json:"customer" binding:"required"`
	LineItems     []models.LineItem `json:"line_items" binding:"required"`
	Fulfillment   string            `json:"fulfillment"`
	PaymentMethod string            `json:"payment_method"`
	Notes         string            `json:"notes"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOrderOperation("create", ok)
	}()

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Enums are normalized here, not silently defaulted: a misspelled
	// fulfillment must not turn a delivery order into a surcharge-free
	// pickup.
	fulfillment := models.FulfillmentPickup
	if req.Fulfillment != "" {
		f, ok := store.NormalizeFulfillment(req.Fulfillment)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown fulfillment method"})
			return
		}
		fulfillment = f
	}
	payment := models.PaymentCash
	if req.PaymentMethod != "" {
		p, ok := store.NormalizePayment(req.PaymentMethod)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment method"})
			return
		}
		payment = p
	}

	order := models.Order{
		Customer:      req.Customer,
		LineItems:     req.LineItems,
		Fulfillment:   fulfillment,
		PaymentMethod: payment,
		Notes:         req.Notes,
	}

	if err := h.lifecycle.CreateOrder(c.Request.Context(), &order); err != nil {
		if err == services.ErrEmptyOrder {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order must contain at least one item"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// UpdateStatus drives the kanban drag. The response always carries the
// previous status: on failure the client uses it to revert its optimistic
// column move.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOrderOperation("status_update", ok)
	}()

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	h.applyTransition(c, req.Status)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOrderOperation("cancel", ok)
	}()

	h.applyTransition(c, models.StatusCancelled)
}

func (h *OrderHandler) applyTransition(c *gin.Context, newStatus models.OrderStatus) {
	orderID := c.Param("id")

	previous, err := h.lifecycle.SetStatus(c.Request.Context(), orderID, newStatus)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"order_id":        orderID,
			"status":          newStatus,
			"previous_status": previous,
		})
	case errors.Is(err, services.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrTerminalStatus):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "previous_status": previous})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"error":           "Failed to persist status change",
			"previous_status": previous,
		})
	}
}
