package store

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
)

// LoadOrders returns the full normalized order collection. Documents that
// fail to decode are logged and skipped; one bad order never aborts the
// load of the rest.
func (s *FirestoreStore) LoadOrders(ctx context.Context) ([]models.Order, error) {
	iter := s.client.Collection(ordersCollection).Documents(ctx)
	defer iter.Stop()

	var orders []models.Order
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate orders: %w", err)
		}
		orders = append(orders, s.decodeOrder(snap))
	}
	return orders, nil
}

// WatchOrders subscribes to the order collection. Every persisted change
// re-delivers the entire current collection; there is no delta path. The
// channel closes when ctx is cancelled or the listener fails.
func (s *FirestoreStore) WatchOrders(ctx context.Context) (<-chan []models.Order, error) {
	out := make(chan []models.Order, 1)

	go func() {
		defer close(out)
		snaps := s.client.Collection(ordersCollection).Snapshots(ctx)
		defer snaps.Stop()

		for {
			qsnap, err := snaps.Next()
			if err != nil {
				if ctx.Err() == nil {
					log.Printf("order watch stopped: %v", err)
				}
				return
			}

			var orders []models.Order
			for {
				snap, err := qsnap.Documents.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					log.Printf("order watch: failed to iterate snapshot: %v", err)
					break
				}
				orders = append(orders, s.decodeOrder(snap))
			}

			select {
			case out <- orders:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (s *FirestoreStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	snap, err := s.client.Collection(ordersCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	order := s.decodeOrder(snap)
	return &order, nil
}

// CreateOrder writes the order document. The caller is responsible for
// having assigned the ID, total and status beforehand.
func (s *FirestoreStore) CreateOrder(ctx context.Context, order *models.Order) error {
	doc := toOrderDoc(order)
	if _, err := s.client.Collection(ordersCollection).Doc(order.ID).Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateStatus persists a single-field status change.
func (s *FirestoreStore) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	_, err := s.client.Collection(ordersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "estatus", Value: statusToWire[status]},
	})
	if err != nil {
		return fmt.Errorf("failed to update status of order %s: %w", id, err)
	}
	return nil
}

// decodeOrder normalizes a snapshot defensively: a malformed items array
// falls back to a bare decode (empty item list) and a completely
// undecodable document becomes an empty Pending order carrying only its ID.
func (s *FirestoreStore) decodeOrder(snap *firestore.DocumentSnapshot) models.Order {
	var doc orderDoc
	if err := snap.DataTo(&doc); err == nil {
		return normalizeOrder(snap.Ref.ID, doc)
	}

	var bare orderDocBare
	if err := snap.DataTo(&bare); err != nil {
		log.Printf("order %s: undecodable document: %v", snap.Ref.ID, err)
		return models.Order{ID: snap.Ref.ID, Status: models.StatusPending}
	}

	log.Printf("order %s: malformed items, loading without line items", snap.Ref.ID)
	return normalizeOrder(snap.Ref.ID, orderDoc{
		Fecha:         bare.Fecha,
		Cliente:       bare.Cliente,
		Total:         bare.Total,
		Estatus:       bare.Estatus,
		Metodo:        bare.Metodo,
		Pago:          bare.Pago,
		Observaciones: bare.Observaciones,
	})
}
