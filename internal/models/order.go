package models

import (
	"time"
)

// OrderStatus is the canonical lifecycle state of an order. The persisted
// documents carry the original Spanish wire strings; the store adapter owns
// the mapping in both directions.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusBaking    OrderStatus = "Baking"
	StatusDelivered OrderStatus = "Delivered"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// KanbanStatuses are the board columns, in display order. Cancelled orders
// leave the board but stay in the historical list.
var KanbanStatuses = []OrderStatus{StatusPending, StatusBaking, StatusDelivered, StatusCompleted}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusBaking, StatusDelivered, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further status change is accepted.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Fulfillment string

const (
	FulfillmentPickup   Fulfillment = "pickup"
	FulfillmentDelivery Fulfillment = "delivery"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

// Customer is the contact block embedded in an order. Only the name is
// guaranteed; email is required for notifications but orders without one are
// still valid.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
}

// LineItem is one product line within an order. Subtotal is computed at
// creation and never re-derived afterwards.
type LineItem struct {
	Category    string  `json:"category"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
	ExtrasText  string  `json:"extras_text,omitempty"`
}

// Order is the normalized in-memory form of a persisted order document.
// ItemsSummary is the human-readable rendering of LineItems kept alongside
// the structured slice; kanban cards consume the string while the reports
// consume the slice.
type Order struct {
	ID            string        `json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	Customer      Customer      `json:"customer"`
	LineItems     []LineItem    `json:"line_items"`
	ItemsSummary  string        `json:"items_summary"`
	Total         float64       `json:"total"`
	Fulfillment   Fulfillment   `json:"fulfillment"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        OrderStatus   `json:"status"`
	Notes         string        `json:"notes,omitempty"`
}

// Notifiable reports whether transactional email can be sent for this order.
// A missing email is a normal condition, not an error.
func (o *Order) Notifiable() bool {
	return o.Customer.Email != ""
}

// Reference is the short code customers quote in transfer concepts, derived
// from the document ID.
func (o *Order) Reference() string {
	if len(o.ID) > 5 {
		return o.ID[:5]
	}
	return o.ID
}

func (o *Order) Cancelled() bool {
	return o.Status == StatusCancelled
}
