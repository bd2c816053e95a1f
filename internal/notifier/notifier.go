// Package notifier turns order lifecycle events into transactional emails.
// Sending is best-effort: a transport failure is logged, never returned to
// the path that triggered the event.
package notifier

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
	"github.com/DamianMlM/yummy-bakery-web/pkg/mailer"
)

// OrderGetter is the slice of the order store the notifier needs.
type OrderGetter interface {
	GetOrder(ctx context.Context, id string) (*models.Order, error)
}

type Service struct {
	orders OrderGetter
	mail   mailer.Sender
	brand  Brand
}

func NewService(orders OrderGetter, mail mailer.Sender, brand Brand) *Service {
	return &Service{orders: orders, mail: mail, brand: brand}
}

// HandleEvent is the event-bus consumer callback. All failure modes are
// terminal here: logged and swallowed.
func (s *Service) HandleEvent(event models.OrderEvent) {
	ctx := context.Background()

	order, err := s.orders.GetOrder(ctx, event.OrderID)
	if err != nil {
		log.Printf("notifier: failed to load order %s: %v", event.OrderID, err)
		return
	}

	if !order.Notifiable() {
		log.Printf("notifier: order %s has no customer email, skipping %s", order.ID, event.Type)
		return
	}

	var subject, body string
	switch event.Type {
	case models.EventOrderCreated:
		subject, body, err = s.RenderConfirmation(order)
	case models.EventOrderCompleted:
		subject, body, err = s.RenderThankYou(order)
	default:
		log.Printf("notifier: unknown event type %q for order %s", event.Type, event.OrderID)
		return
	}
	if err != nil {
		log.Printf("notifier: failed to render %s for order %s: %v", event.Type, order.ID, err)
		return
	}

	if err := s.mail.Send(order.Customer.Email, subject, body); err != nil {
		log.Printf("notifier: failed to send %s for order %s: %v", event.Type, order.ID, err)
		return
	}
	log.Printf("notifier: sent %s for order %s to %s", event.Type, order.ID, order.Customer.Email)
}

type templateData struct {
	Order     *models.Order
	Brand     Brand
	Reference string
	Delivery  bool
	Transfer  bool
}

// RenderConfirmation builds the order-received email.
func (s *Service) RenderConfirmation(order *models.Order) (subject, body string, err error) {
	data := templateData{
		Order:     order,
		Brand:     s.brand,
		Reference: order.Reference(),
		Delivery:  order.Fulfillment == models.FulfillmentDelivery,
		Transfer:  order.PaymentMethod == models.PaymentTransfer,
	}

	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, data); err != nil {
		return "", "", err
	}

	subject = fmt.Sprintf("¡Pedido Recibido! #%s - %s", order.Reference(), s.brand.Name)
	return subject, buf.String(), nil
}

// RenderThankYou builds the completion email.
func (s *Service) RenderThankYou(order *models.Order) (subject, body string, err error) {
	data := templateData{Order: order, Brand: s.brand}

	var buf bytes.Buffer
	if err := thankYouTemplate.Execute(&buf, data); err != nil {
		return "", "", err
	}

	subject = fmt.Sprintf("¡Esperamos que lo disfrutes! - %s", s.brand.Name)
	return subject, buf.String(), nil
}
