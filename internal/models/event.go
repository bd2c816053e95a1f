package models

import (
	"time"
)

// OrderEventType identifies a lifecycle transition the notification
// dispatcher reacts to.
type OrderEventType string

const (
	EventOrderCreated   OrderEventType = "order_created"
	EventOrderCompleted OrderEventType = "order_completed"
)

// OrderEvent is the message published on the event bus when an order enters
// a notifiable state. Consumers reload the order by ID; the event itself
// carries no order payload.
type OrderEvent struct {
	Type     OrderEventType `json:"type"`
	OrderID  string         `json:"order_id"`
	Occurred time.Time      `json:"occurred"`
}
