package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
)

// Wire structs mirror the persisted document shape. The field names are the
// original Spanish ones; nothing outside this package sees them.

type clienteDoc struct {
	Nombre    string `firestore:"nombre"`
	Tel       string `firestore:"tel"`
	Direccion string `firestore:"direccion"`
	Email     string `firestore:"email"`
}

type itemDoc struct {
	Categoria   string  `firestore:"categoria"`
	Nombre      string  `firestore:"nombre"`
	PrecioBase  float64 `firestore:"precioBase"`
	Cantidad    int     `firestore:"cantidad"`
	Subtotal    float64 `firestore:"subtotal"`
	ExtrasTexto string  `firestore:"extrasTexto"`
}

type orderDoc struct {
	Fecha         string     `firestore:"fecha"`
	Cliente       clienteDoc `firestore:"cliente"`
	Items         []itemDoc  `firestore:"items"`
	Total         float64    `firestore:"total"`
	Estatus       string     `firestore:"estatus"`
	Metodo        string     `firestore:"metodo"`
	Pago          string     `firestore:"pago"`
	Observaciones string     `firestore:"observaciones"`
}

// orderDocBare is the fallback decode target when the items array is
// malformed. The order still loads, just with no structured items.
type orderDocBare struct {
	Fecha         string     `firestore:"fecha"`
	Cliente       clienteDoc `firestore:"cliente"`
	Total         float64    `firestore:"total"`
	Estatus       string     `firestore:"estatus"`
	Metodo        string     `firestore:"metodo"`
	Pago          string     `firestore:"pago"`
	Observaciones string     `firestore:"observaciones"`
}

var statusFromWire = map[string]models.OrderStatus{
	"Pendiente":  models.StatusPending,
	"Horneando":  models.StatusBaking,
	"Entregado":  models.StatusDelivered,
	"Finalizado": models.StatusCompleted,
	"Cancelado":  models.StatusCancelled,
	// Documents written by this service use the canonical names directly.
	"Pending":   models.StatusPending,
	"Baking":    models.StatusBaking,
	"Delivered": models.StatusDelivered,
	"Completed": models.StatusCompleted,
	"Cancelled": models.StatusCancelled,
}

var statusToWire = map[models.OrderStatus]string{
	models.StatusPending:   "Pendiente",
	models.StatusBaking:    "Horneando",
	models.StatusDelivered: "Entregado",
	models.StatusCompleted: "Finalizado",
	models.StatusCancelled: "Cancelado",
}

// parseStatus defaults unknown wire values to Pending so a single bad
// document never fails the collection load.
func parseStatus(raw string) models.OrderStatus {
	if st, ok := statusFromWire[raw]; ok {
		return st
	}
	return models.StatusPending
}

// NormalizeFulfillment maps the accepted client spellings (canonical,
// capitalized, or the Spanish wire values) to the canonical constant. ok is
// false for anything unrecognized; only the lenient decode path below
// defaults instead of rejecting.
func NormalizeFulfillment(raw string) (models.Fulfillment, bool) {
	switch strings.ToLower(raw) {
	case "envio", "delivery":
		return models.FulfillmentDelivery, true
	case "recoger", "pickup":
		return models.FulfillmentPickup, true
	}
	return "", false
}

// NormalizePayment is the payment-method counterpart of
// NormalizeFulfillment.
func NormalizePayment(raw string) (models.PaymentMethod, bool) {
	switch strings.ToLower(raw) {
	case "transferencia", "transfer":
		return models.PaymentTransfer, true
	case "efectivo", "cash":
		return models.PaymentCash, true
	}
	return "", false
}

func parseFulfillment(raw string) models.Fulfillment {
	if f, ok := NormalizeFulfillment(raw); ok {
		return f
	}
	return models.FulfillmentPickup
}

func fulfillmentToWire(f models.Fulfillment) string {
	if f == models.FulfillmentDelivery {
		return "envio"
	}
	return "recoger"
}

func parsePayment(raw string) models.PaymentMethod {
	if p, ok := NormalizePayment(raw); ok {
		return p
	}
	return models.PaymentCash
}

func paymentToWire(p models.PaymentMethod) string {
	if p == models.PaymentTransfer {
		return "transferencia"
	}
	return "efectivo"
}

// parseOrderDate accepts the ISO-8601 timestamps written by the storefront
// plus a couple of older date-only formats found in legacy documents.
func parseOrderDate(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SummarizeItems renders the line items as the "{qty}x {name} ({extras})"
// block shown on kanban cards, one line per item.
func SummarizeItems(items []models.LineItem) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		line := fmt.Sprintf("%dx %s", it.Quantity, it.ProductName)
		if it.ExtrasText != "" {
			line += fmt.Sprintf(" (%s)", it.ExtrasText)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// normalizeOrder maps a decoded document to the in-memory Order. Missing or
// odd fields degrade to safe defaults; this function never fails.
func normalizeOrder(id string, doc orderDoc) models.Order {
	items := make([]models.LineItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		qty := it.Cantidad
		if qty <= 0 {
			qty = 1
		}
		items = append(items, models.LineItem{
			Category:    it.Categoria,
			ProductName: it.Nombre,
			UnitPrice:   it.PrecioBase,
			Quantity:    qty,
			Subtotal:    it.Subtotal,
			ExtrasText:  it.ExtrasTexto,
		})
	}

	return models.Order{
		ID:        id,
		CreatedAt: parseOrderDate(doc.Fecha),
		Customer: models.Customer{
			Name:    doc.Cliente.Nombre,
			Phone:   doc.Cliente.Tel,
			Address: doc.Cliente.Direccion,
			Email:   doc.Cliente.Email,
		},
		LineItems:     items,
		ItemsSummary:  SummarizeItems(items),
		Total:         doc.Total,
		Fulfillment:   parseFulfillment(doc.Metodo),
		PaymentMethod: parsePayment(doc.Pago),
		Status:        parseStatus(doc.Estatus),
		Notes:         doc.Observaciones,
	}
}

func toOrderDoc(o *models.Order) orderDoc {
	items := make([]itemDoc, 0, len(o.LineItems))
	for _, it := range o.LineItems {
		items = append(items, itemDoc{
			Categoria:   Slugify(it.Category),
			Nombre:      it.ProductName,
			PrecioBase:  it.UnitPrice,
			Cantidad:    it.Quantity,
			Subtotal:    it.Subtotal,
			ExtrasTexto: it.ExtrasText,
		})
	}

	return orderDoc{
		Fecha: o.CreatedAt.Format(time.RFC3339),
		Cliente: clienteDoc{
			Nombre:    o.Customer.Name,
			Tel:       o.Customer.Phone,
			Direccion: o.Customer.Address,
			Email:     o.Customer.Email,
		},
		Items:         items,
		Total:         o.Total,
		Estatus:       statusToWire[o.Status],
		Metodo:        fulfillmentToWire(o.Fulfillment),
		Pago:          paymentToWire(o.PaymentMethod),
		Observaciones: o.Notes,
	}
}
