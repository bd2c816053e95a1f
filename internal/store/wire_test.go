package store

import (
	"testing"
	"time"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Panes Dulces", "panes-dulces"},
		{"  Pasteles  ", "pasteles"},
		{"Rol   de   Canela", "rol-de-canela"},
		{"galletas", "galletas"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseStatusAcceptsBothNamings(t *testing.T) {
	tests := []struct {
		raw  string
		want models.OrderStatus
	}{
		{"Pendiente", models.StatusPending},
		{"Horneando", models.StatusBaking},
		{"Entregado", models.StatusDelivered},
		{"Finalizado", models.StatusCompleted},
		{"Cancelado", models.StatusCancelled},
		{"Completed", models.StatusCompleted},
		{"Baking", models.StatusBaking},
		{"garbage", models.StatusPending},
		{"", models.StatusPending},
	}
	for _, tt := range tests {
		if got := parseStatus(tt.raw); got != tt.want {
			t.Errorf("parseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestStatusRoundTrip(t *testing.T) {
	for _, st := range []models.OrderStatus{
		models.StatusPending, models.StatusBaking, models.StatusDelivered,
		models.StatusCompleted, models.StatusCancelled,
	} {
		if got := parseStatus(statusToWire[st]); got != st {
			t.Errorf("round trip of %q went through %q to %q", st, statusToWire[st], got)
		}
	}
}

func TestNormalizeFulfillmentAndPayment(t *testing.T) {
	for _, raw := range []string{"delivery", "Delivery", "envio", "ENVIO"} {
		if f, ok := NormalizeFulfillment(raw); !ok || f != models.FulfillmentDelivery {
			t.Errorf("NormalizeFulfillment(%q) = %q, %v; want delivery, true", raw, f, ok)
		}
	}
	for _, raw := range []string{"pickup", "recoger"} {
		if f, ok := NormalizeFulfillment(raw); !ok || f != models.FulfillmentPickup {
			t.Errorf("NormalizeFulfillment(%q) = %q, %v; want pickup, true", raw, f, ok)
		}
	}
	if _, ok := NormalizeFulfillment("drone"); ok {
		t.Error("NormalizeFulfillment should reject unknown values")
	}
	if _, ok := NormalizeFulfillment(""); ok {
		t.Error("NormalizeFulfillment should reject the empty string")
	}

	for _, raw := range []string{"transfer", "Transferencia"} {
		if p, ok := NormalizePayment(raw); !ok || p != models.PaymentTransfer {
			t.Errorf("NormalizePayment(%q) = %q, %v; want transfer, true", raw, p, ok)
		}
	}
	for _, raw := range []string{"cash", "efectivo"} {
		if p, ok := NormalizePayment(raw); !ok || p != models.PaymentCash {
			t.Errorf("NormalizePayment(%q) = %q, %v; want cash, true", raw, p, ok)
		}
	}
	if _, ok := NormalizePayment("paypal"); ok {
		t.Error("NormalizePayment should reject unknown values")
	}
}

func TestParseFulfillmentAndPayment(t *testing.T) {
	if parseFulfillment("envio") != models.FulfillmentDelivery {
		t.Error("envio should map to delivery")
	}
	if parseFulfillment("Delivery") != models.FulfillmentDelivery {
		t.Error("Delivery should map to delivery")
	}
	if parseFulfillment("recoger") != models.FulfillmentPickup {
		t.Error("recoger should map to pickup")
	}
	if parseFulfillment("") != models.FulfillmentPickup {
		t.Error("empty method should default to pickup")
	}

	if parsePayment("transferencia") != models.PaymentTransfer {
		t.Error("transferencia should map to transfer")
	}
	if parsePayment("efectivo") != models.PaymentCash {
		t.Error("efectivo should map to cash")
	}
	if parsePayment("") != models.PaymentCash {
		t.Error("empty payment should default to cash")
	}
}

func TestParseOrderDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2026-03-10T14:30:00-06:00", time.Date(2026, 3, 10, 14, 30, 0, 0, time.FixedZone("", -6*3600))},
		{"2026-03-10T14:30:00", time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)},
		{"2026-03-10", time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)},
		{"not a date", time.Time{}},
		{"", time.Time{}},
	}
	for _, tt := range tests {
		if got := parseOrderDate(tt.raw); !got.Equal(tt.want) {
			t.Errorf("parseOrderDate(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestSummarizeItems(t *testing.T) {
	items := []models.LineItem{
		{ProductName: "Rol Canela", Quantity: 2, ExtrasText: "extra glaseado"},
		{ProductName: "Concha", Quantity: 1},
	}

	want := "2x Rol Canela (extra glaseado)\n1x Concha"
	if got := SummarizeItems(items); got != want {
		t.Errorf("SummarizeItems = %q, want %q", got, want)
	}

	if got := SummarizeItems(nil); got != "" {
		t.Errorf("SummarizeItems(nil) = %q, want empty", got)
	}
}

func TestNormalizeOrderDefaults(t *testing.T) {
	doc := orderDoc{
		Fecha: "2026-03-10T14:30:00",
		Cliente: clienteDoc{
			Nombre: "Ana",
			Email:  "ana@example.com",
		},
		Items: []itemDoc{
			{Categoria: "panes-dulces", Nombre: "Rol Canela", PrecioBase: 45, Cantidad: 0, Subtotal: 45},
		},
		Total:   55,
		Estatus: "Horneando",
		Metodo:  "envio",
		Pago:    "transferencia",
	}

	o := normalizeOrder("abc123", doc)

	if o.ID != "abc123" {
		t.Errorf("ID = %q", o.ID)
	}
	if o.Status != models.StatusBaking {
		t.Errorf("Status = %q, want Baking", o.Status)
	}
	if o.Fulfillment != models.FulfillmentDelivery || o.PaymentMethod != models.PaymentTransfer {
		t.Errorf("Fulfillment/Payment = %q/%q", o.Fulfillment, o.PaymentMethod)
	}
	// A zero or missing quantity loads as one unit.
	if len(o.LineItems) != 1 || o.LineItems[0].Quantity != 1 {
		t.Errorf("LineItems = %+v, want single item with quantity 1", o.LineItems)
	}
	if o.ItemsSummary != "1x Rol Canela" {
		t.Errorf("ItemsSummary = %q", o.ItemsSummary)
	}
}

func TestToOrderDocWritesSpanishWireValues(t *testing.T) {
	o := &models.Order{
		ID:        "abc123",
		CreatedAt: time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		Customer:  models.Customer{Name: "Ana"},
		LineItems: []models.LineItem{
			{Category: "Panes Dulces", ProductName: "Rol Canela", UnitPrice: 45, Quantity: 2, Subtotal: 90},
		},
		Total:         100,
		Fulfillment:   models.FulfillmentDelivery,
		PaymentMethod: models.PaymentCash,
		Status:        models.StatusPending,
	}

	doc := toOrderDoc(o)

	if doc.Estatus != "Pendiente" {
		t.Errorf("Estatus = %q, want Pendiente", doc.Estatus)
	}
	if doc.Metodo != "envio" {
		t.Errorf("Metodo = %q, want envio", doc.Metodo)
	}
	if doc.Pago != "efectivo" {
		t.Errorf("Pago = %q, want efectivo", doc.Pago)
	}
	if doc.Items[0].Categoria != "panes-dulces" {
		t.Errorf("Categoria = %q, want panes-dulces", doc.Items[0].Categoria)
	}
	if doc.Fecha != "2026-03-10T14:30:00Z" {
		t.Errorf("Fecha = %q", doc.Fecha)
	}
}
