package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DamianMlM/yummy-bakery-web/internal/reports"
	"github.com/DamianMlM/yummy-bakery-web/internal/services"
	"github.com/DamianMlM/yummy-bakery-web/internal/store"
)

type DashboardHandler struct {
	feed    *services.Feed
	catalog *store.FirestoreStore
}

func NewDashboardHandler(feed *services.Feed, catalog *store.FirestoreStore) *DashboardHandler {
	return &DashboardHandler{feed: feed, catalog: catalog}
}

// Dashboard computes every chart and KPI for the range in one pass over
// the filtered collection. Each aggregate degrades independently; a
// catalog hiccup only costs the category labels.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	orders, err := h.feed.Orders(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load orders"})
		return
	}

	rng := parseRange(c)
	filtered := reports.Filter(orders, rng)

	labels, err := h.catalog.CategoryLabels(ctx)
	if err != nil {
		log.Printf("dashboard: failed to load category labels, using raw slugs: %v", err)
		labels = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"start":               rng.Start.Format(dayLayout),
		"end":                 rng.End.Format(dayLayout),
		"single_day":          rng.IsSingleDay(),
		"kpis":                reports.ComputeKPIs(filtered),
		"time_series":         reports.TimeSeries(filtered, rng),
		"status_distribution": reports.StatusDistribution(filtered),
		"top_products":        reports.TopProducts(filtered, 5),
		"top_customers":       reports.TopCustomers(filtered, 5),
		"category_revenue":    reports.CategoryRevenues(filtered, labels),
	})
}

// Production is the kitchen view: units still to bake, optionally narrowed
// by fulfillment method and category.
func (h *DashboardHandler) Production(c *gin.Context) {
	orders, err := h.feed.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load orders"})
		return
	}

	rng := parseRange(c)
	filtered := reports.Filter(orders, rng)

	fulfillment := c.DefaultQuery("fulfillment", reports.FilterAll)
	category := c.DefaultQuery("category", reports.FilterAll)

	c.JSON(http.StatusOK, gin.H{
		"start":       rng.Start.Format(dayLayout),
		"end":         rng.End.Format(dayLayout),
		"fulfillment": fulfillment,
		"category":    category,
		"summary":     reports.Production(filtered, fulfillment, category),
	})
}
