package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
	"github.com/DamianMlM/yummy-bakery-web/internal/repository"
	"github.com/DamianMlM/yummy-bakery-web/internal/store"
)

var (
	ErrUnknownStatus  = errors.New("unknown order status")
	ErrTerminalStatus = errors.New("order is in a terminal status")
	ErrEmptyOrder     = errors.New("order must contain at least one item")
)

// OrderStore is the persistence boundary the lifecycle engine writes
// through.
type OrderStore interface {
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
}

// EventPublisher delivers lifecycle events to the notification dispatcher.
type EventPublisher interface {
	PublishOrderEvent(event models.OrderEvent) error
}

type LifecycleService interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	SetStatus(ctx context.Context, orderID string, newStatus models.OrderStatus) (models.OrderStatus, error)
	CancelOrder(ctx context.Context, orderID string) (models.OrderStatus, error)
}

type lifecycleService struct {
	store        OrderStore
	publisher    EventPublisher
	customerRepo repository.CustomerRepository
	deliveryFee  float64
}

func NewLifecycleService(orderStore OrderStore, publisher EventPublisher, customerRepo repository.CustomerRepository, deliveryFee float64) LifecycleService {
	return &lifecycleService{
		store:        orderStore,
		publisher:    publisher,
		customerRepo: customerRepo,
		deliveryFee:  deliveryFee,
	}
}

// CreateOrder computes the total, persists the document and fires the
// confirmation path. The total is fixed here once: sum of line-item
// subtotals plus the delivery surcharge when applicable. It is never
// recomputed afterwards.
func (s *lifecycleService) CreateOrder(ctx context.Context, order *models.Order) error {
	if len(order.LineItems) == 0 {
		return ErrEmptyOrder
	}

	for i := range order.LineItems {
		it := &order.LineItems[i]
		if it.Quantity <= 0 {
			it.Quantity = 1
		}
		if it.Subtotal == 0 {
			it.Subtotal = it.UnitPrice * float64(it.Quantity)
		}
	}

	order.Total = 0
	for _, it := range order.LineItems {
		order.Total += it.Subtotal
	}
	if order.Fulfillment == models.FulfillmentDelivery {
		order.Total += s.deliveryFee
	}

	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()
	order.Status = models.StatusPending
	order.ItemsSummary = store.SummarizeItems(order.LineItems)

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return err
	}

	// Directory upkeep and the confirmation email are side effects; the
	// order itself is already committed, so failures only get logged.
	if s.customerRepo != nil {
		if err := s.customerRepo.RecordOrder(order.Customer, order.CreatedAt); err != nil {
			log.Printf("failed to record customer for order %s: %v", order.ID, err)
		}
	}

	s.publish(models.OrderEvent{
		Type:     models.EventOrderCreated,
		OrderID:  order.ID,
		Occurred: order.CreatedAt,
	})
	return nil
}

// SetStatus moves an order to any non-terminal-origin status. Transitions
// are deliberately unrestricted between board columns (a card can jump
// straight from Pending to Completed); only Completed and Cancelled are
// absorbing. The previous status is always returned so the caller can roll
// back an optimistic UI update when persistence fails.
func (s *lifecycleService) SetStatus(ctx context.Context, orderID string, newStatus models.OrderStatus) (models.OrderStatus, error) {
	if !newStatus.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, newStatus)
	}

	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	previous := order.Status

	// Re-saving the same value is a no-op; in particular it must not
	// re-fire the completion email.
	if previous == newStatus {
		return previous, nil
	}
	if previous.Terminal() {
		return previous, fmt.Errorf("%w: %s", ErrTerminalStatus, previous)
	}

	if err := s.store.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return previous, err
	}

	// The completion event depends on an explicit before/after comparison,
	// not on which transition path was taken. Note the read-check-write is
	// not transactional: two rapid transitions on the same order are
	// last-write-wins.
	if newStatus == models.StatusCompleted && previous != models.StatusCompleted {
		s.publish(models.OrderEvent{
			Type:     models.EventOrderCompleted,
			OrderID:  orderID,
			Occurred: time.Now(),
		})
	}

	return previous, nil
}

// CancelOrder moves the order into the absorbing Cancelled state. No
// notification fires; the order drops out of every aggregate but stays in
// the historical list.
func (s *lifecycleService) CancelOrder(ctx context.Context, orderID string) (models.OrderStatus, error) {
	return s.SetStatus(ctx, orderID, models.StatusCancelled)
}

func (s *lifecycleService) publish(event models.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(event); err != nil {
		log.Printf("failed to publish %s for order %s: %v", event.Type, event.OrderID, err)
	}
}
