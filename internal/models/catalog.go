package models

// Product is a catalog entry. Category holds the slug of the category
// document it belongs to. ImageURL points into object storage and is carried
// as an opaque string.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Active      bool    `json:"active"`
}

// Category is a catalog grouping. Slug doubles as the document ID and the
// join key referenced by products and order line items. Deleting a category
// tombstones it (Active=false) instead of removing the document, so slugs
// referenced by old orders keep resolving.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Order  int    `json:"order"`
	Active bool   `json:"active"`
}

// Topping is an extra that can be added to products of a category.
type Topping struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Active   bool    `json:"active"`
}
