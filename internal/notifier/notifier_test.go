package notifier

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
)

var testBrand = Brand{
	Name:          "YUMMY BAKERY",
	PickupAddress: "Arroyo Salvial 433",
	PickupHours:   "6:00 PM - 10:30 PM",
	BankName:      "NU (STP)",
	BankCLABE:     "638180000189543165",
	BankHolder:    "Leticia Mariscal Miranda",
	ContactPhone:  "33 2253 4583",
}

type fakeSender struct {
	sent []sentMail
	fail error
}

type sentMail struct {
	to, subject, body string
}

func (f *fakeSender) Send(to, subject, htmlBody string) error {
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

type fakeOrders struct {
	order *models.Order
	err   error
}

func (f *fakeOrders) GetOrder(_ context.Context, _ string) (*models.Order, error) {
	return f.order, f.err
}

func testOrder() *models.Order {
	return &models.Order{
		ID: "abc123def",
		Customer: models.Customer{
			Name:    "Ana",
			Email:   "ana@example.com",
			Address: "Calle Falsa 123",
		},
		LineItems: []models.LineItem{
			{ProductName: "Rol Canela", Quantity: 2, Subtotal: 90},
		},
		Total:         100,
		Fulfillment:   models.FulfillmentDelivery,
		PaymentMethod: models.PaymentTransfer,
		Status:        models.StatusPending,
	}
}

func TestRenderConfirmationTransferDelivery(t *testing.T) {
	svc := NewService(nil, nil, testBrand)
	order := testOrder()

	subject, body, err := svc.RenderConfirmation(order)
	if err != nil {
		t.Fatalf("RenderConfirmation: %v", err)
	}

	if want := "¡Pedido Recibido! #abc12 - YUMMY BAKERY"; subject != want {
		t.Errorf("subject = %q, want %q", subject, want)
	}
	for _, fragment := range []string{
		"¡Hola Ana!",
		"2x Rol Canela",
		"$90",
		"$100",
		"Envío a domicilio",
		"Calle Falsa 123",
		"CLABE: 638180000189543165",
		"Beneficiaria: Leticia Mariscal Miranda",
		"Concepto: abc12",
	} {
		if !strings.Contains(body, fragment) {
			t.Errorf("body missing %q", fragment)
		}
	}
	if strings.Contains(body, "Pago Contra Entrega") {
		t.Error("transfer order should not render the cash block")
	}
}

func TestRenderConfirmationCashPickup(t *testing.T) {
	svc := NewService(nil, nil, testBrand)
	order := testOrder()
	order.Fulfillment = models.FulfillmentPickup
	order.PaymentMethod = models.PaymentCash

	_, body, err := svc.RenderConfirmation(order)
	if err != nil {
		t.Fatalf("RenderConfirmation: %v", err)
	}

	for _, fragment := range []string{
		"Pago Contra Entrega",
		"Punto de Entrega: <strong>Arroyo Salvial 433</strong>",
		"Horario: <strong>6:00 PM - 10:30 PM</strong>",
	} {
		if !strings.Contains(body, fragment) {
			t.Errorf("body missing %q", fragment)
		}
	}
	if strings.Contains(body, "Datos para Transferencia") {
		t.Error("cash order should not render the transfer block")
	}
}

func TestRenderThankYou(t *testing.T) {
	svc := NewService(nil, nil, testBrand)

	subject, body, err := svc.RenderThankYou(testOrder())
	if err != nil {
		t.Fatalf("RenderThankYou: %v", err)
	}
	if want := "¡Esperamos que lo disfrutes! - YUMMY BAKERY"; subject != want {
		t.Errorf("subject = %q, want %q", subject, want)
	}
	if !strings.Contains(body, "Muchas gracias por tu compra, <strong>Ana</strong>") {
		t.Error("body missing the customer greeting")
	}
}

func TestHandleEventSendsConfirmation(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(&fakeOrders{order: testOrder()}, sender, testBrand)

	svc.HandleEvent(models.OrderEvent{Type: models.EventOrderCreated, OrderID: "abc123def"})

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(sender.sent))
	}
	if sender.sent[0].to != "ana@example.com" {
		t.Errorf("to = %q", sender.sent[0].to)
	}
}

func TestHandleEventSkipsMissingEmail(t *testing.T) {
	order := testOrder()
	order.Customer.Email = ""
	sender := &fakeSender{}
	svc := NewService(&fakeOrders{order: order}, sender, testBrand)

	svc.HandleEvent(models.OrderEvent{Type: models.EventOrderCreated, OrderID: order.ID})

	if len(sender.sent) != 0 {
		t.Errorf("sent %d mails, want 0", len(sender.sent))
	}
}

func TestHandleEventSwallowsFailures(t *testing.T) {
	// Neither a load failure nor a transport failure may panic or propagate.
	svc := NewService(&fakeOrders{err: errors.New("unreachable")}, &fakeSender{}, testBrand)
	svc.HandleEvent(models.OrderEvent{Type: models.EventOrderCreated, OrderID: "x"})

	svc = NewService(&fakeOrders{order: testOrder()}, &fakeSender{fail: errors.New("smtp down")}, testBrand)
	svc.HandleEvent(models.OrderEvent{Type: models.EventOrderCompleted, OrderID: "abc123def"})
}

func TestHandleEventIgnoresUnknownType(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(&fakeOrders{order: testOrder()}, sender, testBrand)

	svc.HandleEvent(models.OrderEvent{Type: "order_deleted", OrderID: "abc123def"})

	if len(sender.sent) != 0 {
		t.Errorf("sent %d mails, want 0", len(sender.sent))
	}
}
