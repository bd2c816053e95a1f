package reports

import (
	"sort"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
	"github.com/DamianMlM/yummy-bakery-web/internal/store"
)

// FilterAll is the wildcard value for the production summary filters.
const FilterAll = "all"

// CategoryUnits pairs a category slug with a unit count.
type CategoryUnits struct {
	Slug  string `json:"slug"`
	Units int    `json:"units"`
}

// ProductionSummary is the kitchen-facing "still to bake" aggregate: unit
// totals over orders that have not been delivered yet.
type ProductionSummary struct {
	TotalUnits    int             `json:"total_units"`
	DeliveryUnits int             `json:"delivery_units"`
	PickupUnits   int             `json:"pickup_units"`
	Products      []ProductUnits  `json:"products"`
	Categories    []CategoryUnits `json:"categories"`
}

// Production computes the summary over orders whose status is Pending or
// Baking. fulfillment and category narrow the result further; pass
// FilterAll (or "") for no restriction. category is matched as a slug.
func Production(orders []models.Order, fulfillment, category string) ProductionSummary {
	categorySlug := store.Slugify(category)
	wantAllFulfillment := fulfillment == "" || fulfillment == FilterAll
	wantAllCategories := categorySlug == "" || categorySlug == FilterAll

	summary := ProductionSummary{}
	productUnits := make(map[string]int)
	categoryUnits := make(map[string]int)
	var productNames, categorySlugs []string

	for _, o := range orders {
		if o.Status != models.StatusPending && o.Status != models.StatusBaking {
			continue
		}
		if !wantAllFulfillment && string(o.Fulfillment) != fulfillment {
			continue
		}
		for _, it := range o.LineItems {
			slug := store.Slugify(it.Category)
			if !wantAllCategories && slug != categorySlug {
				continue
			}

			summary.TotalUnits += it.Quantity
			if o.Fulfillment == models.FulfillmentDelivery {
				summary.DeliveryUnits += it.Quantity
			} else {
				summary.PickupUnits += it.Quantity
			}

			if _, seen := productUnits[it.ProductName]; !seen {
				productNames = append(productNames, it.ProductName)
			}
			productUnits[it.ProductName] += it.Quantity

			if slug != "" {
				if _, seen := categoryUnits[slug]; !seen {
					categorySlugs = append(categorySlugs, slug)
				}
				categoryUnits[slug] += it.Quantity
			}
		}
	}

	summary.Products = make([]ProductUnits, 0, len(productNames))
	for _, name := range productNames {
		summary.Products = append(summary.Products, ProductUnits{Name: name, Units: productUnits[name]})
	}
	sort.SliceStable(summary.Products, func(i, j int) bool {
		return summary.Products[i].Units > summary.Products[j].Units
	})

	summary.Categories = make([]CategoryUnits, 0, len(categorySlugs))
	for _, slug := range categorySlugs {
		summary.Categories = append(summary.Categories, CategoryUnits{Slug: slug, Units: categoryUnits[slug]})
	}
	sort.SliceStable(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Units > summary.Categories[j].Units
	})

	return summary
}
