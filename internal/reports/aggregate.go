// Package reports derives the dashboard figures from a filtered order set.
// Every function here is stateless and side-effect-free: orders in, values
// out. Cancelled orders are excluded from every aggregate; only the
// historical list view keeps them.
package reports

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
	"github.com/DamianMlM/yummy-bakery-web/internal/store"
)

// KPIs are the headline numbers at the top of the dashboard.
type KPIs struct {
	Revenue        float64 `json:"revenue"`
	OrderCount     int     `json:"order_count"`
	AverageTicket  float64 `json:"average_ticket"`
	CompletionRate float64 `json:"completion_rate"`
}

// TimeBucket is one point of the sales time series.
type TimeBucket struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}

// ProductUnits pairs a product name with a unit count.
type ProductUnits struct {
	Name  string `json:"name"`
	Units int    `json:"units"`
}

// CustomerOrders pairs a customer name with an order count.
type CustomerOrders struct {
	Name   string `json:"name"`
	Orders int    `json:"orders"`
}

// CategoryRevenue is the revenue attributed to one category slug, with the
// catalog label when one resolves.
type CategoryRevenue struct {
	Slug    string  `json:"slug"`
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}

// Active drops cancelled orders. Everything below operates on its output.
func Active(orders []models.Order) []models.Order {
	active := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if !o.Cancelled() {
			active = append(active, o)
		}
	}
	return active
}

// ComputeKPIs totals revenue and derives the per-order figures. An empty
// set yields zeros; the divisions are guarded.
func ComputeKPIs(orders []models.Order) KPIs {
	var kpis KPIs
	completed := 0
	for _, o := range Active(orders) {
		kpis.Revenue += o.Total
		kpis.OrderCount++
		if o.Status == models.StatusCompleted {
			completed++
		}
	}
	if kpis.OrderCount > 0 {
		kpis.AverageTicket = kpis.Revenue / float64(kpis.OrderCount)
		kpis.CompletionRate = math.Round(float64(completed)/float64(kpis.OrderCount)*1000) / 10
	}
	return kpis
}

// businessHours pre-seeds the single-day series so quiet hours still show
// as zero points on the chart.
const (
	businessOpenHour  = 8
	businessCloseHour = 20
)

// TimeSeries buckets revenue by hour of day when the range is a single day
// and by calendar day otherwise. Buckets are sorted by actual hour number
// or date, never lexically.
func TimeSeries(orders []models.Order, r Range) []TimeBucket {
	active := Active(orders)
	if r.IsSingleDay() {
		return hourlySeries(active)
	}
	return dailySeries(active)
}

func hourlySeries(orders []models.Order) []TimeBucket {
	revenue := make(map[int]float64)
	for h := businessOpenHour; h <= businessCloseHour; h++ {
		revenue[h] = 0
	}
	for _, o := range orders {
		revenue[o.CreatedAt.Hour()] += o.Total
	}

	hours := make([]int, 0, len(revenue))
	for h := range revenue {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	buckets := make([]TimeBucket, 0, len(hours))
	for _, h := range hours {
		buckets = append(buckets, TimeBucket{
			Label:   fmt.Sprintf("%d:00", h),
			Revenue: revenue[h],
		})
	}
	return buckets
}

func dailySeries(orders []models.Order) []TimeBucket {
	revenue := make(map[time.Time]float64)
	for _, o := range orders {
		day := time.Date(o.CreatedAt.Year(), o.CreatedAt.Month(), o.CreatedAt.Day(), 0, 0, 0, 0, o.CreatedAt.Location())
		revenue[day] += o.Total
	}

	days := make([]time.Time, 0, len(revenue))
	for d := range revenue {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	buckets := make([]TimeBucket, 0, len(days))
	for _, d := range days {
		buckets = append(buckets, TimeBucket{
			Label:   d.Format("02/01"),
			Revenue: revenue[d],
		})
	}
	return buckets
}

// StatusDistribution counts orders per board column. All four columns are
// always present, zero or not; cancelled orders are not a column.
func StatusDistribution(orders []models.Order) map[models.OrderStatus]int {
	counts := make(map[models.OrderStatus]int, len(models.KanbanStatuses))
	for _, st := range models.KanbanStatuses {
		counts[st] = 0
	}
	for _, o := range Active(orders) {
		if _, ok := counts[o.Status]; ok {
			counts[o.Status]++
		}
	}
	return counts
}

// TopProducts sums units per product name and returns the top n, ties
// broken by first encounter. Orders without structured line items fall back
// to the heuristic summary parser.
func TopProducts(orders []models.Order, n int) []ProductUnits {
	units := make(map[string]int)
	var names []string

	add := func(name string, qty int) {
		if name == "" {
			return
		}
		if _, seen := units[name]; !seen {
			names = append(names, name)
		}
		units[name] += qty
	}

	for _, o := range Active(orders) {
		if len(o.LineItems) > 0 {
			for _, it := range o.LineItems {
				add(it.ProductName, it.Quantity)
			}
			continue
		}
		for _, line := range ParseItemSummary(o.ItemsSummary) {
			add(line.Name, line.Quantity)
		}
	}

	ranked := make([]ProductUnits, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, ProductUnits{Name: name, Units: units[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Units > ranked[j].Units })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopCustomers counts orders per customer name and returns the top n.
func TopCustomers(orders []models.Order, n int) []CustomerOrders {
	counts := make(map[string]int)
	var names []string
	for _, o := range Active(orders) {
		if o.Customer.Name == "" {
			continue
		}
		if _, seen := counts[o.Customer.Name]; !seen {
			names = append(names, o.Customer.Name)
		}
		counts[o.Customer.Name]++
	}

	ranked := make([]CustomerOrders, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, CustomerOrders{Name: name, Orders: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Orders > ranked[j].Orders })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// CategoryRevenues sums line-item subtotals per category slug. The labels
// map comes from the catalog; a slug with no catalog entry falls back to
// the raw category string from the order.
func CategoryRevenues(orders []models.Order, labels map[string]string) []CategoryRevenue {
	revenue := make(map[string]float64)
	raw := make(map[string]string)
	var slugs []string

	for _, o := range Active(orders) {
		for _, it := range o.LineItems {
			slug := store.Slugify(it.Category)
			if slug == "" {
				continue
			}
			if _, seen := revenue[slug]; !seen {
				slugs = append(slugs, slug)
				raw[slug] = it.Category
			}
			revenue[slug] += it.Subtotal
		}
	}

	result := make([]CategoryRevenue, 0, len(slugs))
	for _, slug := range slugs {
		label, ok := labels[slug]
		if !ok {
			label = raw[slug]
		}
		result = append(result, CategoryRevenue{Slug: slug, Label: label, Revenue: revenue[slug]})
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Revenue > result[j].Revenue })
	return result
}
