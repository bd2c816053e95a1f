package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

const (
	ordersCollection     = "pedidos"
	productsCollection   = "productos"
	categoriesCollection = "categorias"
	toppingsCollection   = "toppings"
)

// FirestoreStore is the adapter between the persisted document collections
// and the normalized domain types. It owns the wire-format mapping; nothing
// else reads or writes the collections directly.
type FirestoreStore struct {
	client *firestore.Client
}

func Initialize(ctx context.Context, projectID string) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return &FirestoreStore{client: client}, nil
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
