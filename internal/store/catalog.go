package store

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
)

type productDoc struct {
	Nombre      string  `firestore:"nombre"`
	Categoria   string  `firestore:"categoria"`
	Precio      float64 `firestore:"precio"`
	Descripcion string  `firestore:"descripcion"`
	Imagen      string  `firestore:"imagen"`
	Activo      bool    `firestore:"activo"`
}

type categoryDoc struct {
	Nombre string `firestore:"nombre"`
	Valor  string `firestore:"valor"`
	Orden  int    `firestore:"orden"`
	Activo bool   `firestore:"activo"`
}

type toppingDoc struct {
	Nombre    string  `firestore:"nombre"`
	Precio    float64 `firestore:"precio"`
	Categoria string  `firestore:"categoria"`
	Activo    bool    `firestore:"activo"`
}

func (s *FirestoreStore) LoadProducts(ctx context.Context) ([]models.Product, error) {
	iter := s.client.Collection(productsCollection).Documents(ctx)
	defer iter.Stop()

	var products []models.Product
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}
		var doc productDoc
		if err := snap.DataTo(&doc); err != nil {
			log.Printf("product %s: skipping undecodable document: %v", snap.Ref.ID, err)
			continue
		}
		products = append(products, models.Product{
			ID:          snap.Ref.ID,
			Name:        doc.Nombre,
			Category:    doc.Categoria,
			Price:       doc.Precio,
			Description: doc.Descripcion,
			ImageURL:    doc.Imagen,
			Active:      doc.Activo,
		})
	}
	return products, nil
}

// SaveProduct creates or updates a product. New products get a slug ID
// derived from the name.
func (s *FirestoreStore) SaveProduct(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = Slugify(product.Name)
	}
	doc := productDoc{
		Nombre:      product.Name,
		Categoria:   Slugify(product.Category),
		Precio:      product.Price,
		Descripcion: product.Description,
		Imagen:      product.ImageURL,
		Activo:      product.Active,
	}
	if _, err := s.client.Collection(productsCollection).Doc(product.ID).Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to save product %s: %w", product.ID, err)
	}
	return nil
}

func (s *FirestoreStore) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.client.Collection(productsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

// LoadCategories returns all categories sorted by their display order,
// tombstoned ones included so historical slugs keep resolving to a label.
func (s *FirestoreStore) LoadCategories(ctx context.Context) ([]models.Category, error) {
	iter := s.client.Collection(categoriesCollection).Documents(ctx)
	defer iter.Stop()

	var categories []models.Category
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate categories: %w", err)
		}
		var doc categoryDoc
		if err := snap.DataTo(&doc); err != nil {
			log.Printf("category %s: skipping undecodable document: %v", snap.Ref.ID, err)
			continue
		}
		slug := doc.Valor
		if slug == "" {
			slug = snap.Ref.ID
		}
		categories = append(categories, models.Category{
			ID:     snap.Ref.ID,
			Name:   doc.Nombre,
			Slug:   slug,
			Order:  doc.Orden,
			Active: doc.Activo,
		})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})
	return categories, nil
}

// CategoryLabels maps slugs to human labels for the reporting paths.
func (s *FirestoreStore) CategoryLabels(ctx context.Context) (map[string]string, error) {
	categories, err := s.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}
	labels := make(map[string]string, len(categories))
	for _, c := range categories {
		labels[c.Slug] = c.Name
	}
	return labels, nil
}

func (s *FirestoreStore) SaveCategory(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = Slugify(category.Name)
	}
	if category.Slug == "" {
		category.Slug = category.ID
	}
	doc := categoryDoc{
		Nombre: category.Name,
		Valor:  category.Slug,
		Orden:  category.Order,
		Activo: category.Active,
	}
	if _, err := s.client.Collection(categoriesCollection).Doc(category.ID).Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to save category %s: %w", category.ID, err)
	}
	return nil
}

// DeleteCategory tombstones the document instead of removing it. Products
// and historical orders keep referencing the slug, so a hard delete would
// leave them dangling.
func (s *FirestoreStore) DeleteCategory(ctx context.Context, id string) error {
	_, err := s.client.Collection(categoriesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "activo", Value: false},
	})
	if err != nil {
		return fmt.Errorf("failed to tombstone category %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) LoadToppings(ctx context.Context) ([]models.Topping, error) {
	iter := s.client.Collection(toppingsCollection).Documents(ctx)
	defer iter.Stop()

	var toppings []models.Topping
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate toppings: %w", err)
		}
		var doc toppingDoc
		if err := snap.DataTo(&doc); err != nil {
			log.Printf("topping %s: skipping undecodable document: %v", snap.Ref.ID, err)
			continue
		}
		toppings = append(toppings, models.Topping{
			ID:       snap.Ref.ID,
			Name:     doc.Nombre,
			Price:    doc.Precio,
			Category: doc.Categoria,
			Active:   doc.Activo,
		})
	}
	return toppings, nil
}

func (s *FirestoreStore) SaveTopping(ctx context.Context, topping *models.Topping) error {
	if topping.ID == "" {
		topping.ID = fmt.Sprintf("top-%d", time.Now().UnixMilli())
	}
	doc := toppingDoc{
		Nombre:    topping.Name,
		Precio:    topping.Price,
		Categoria: topping.Category,
		Activo:    topping.Active,
	}
	if _, err := s.client.Collection(toppingsCollection).Doc(topping.ID).Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to save topping %s: %w", topping.ID, err)
	}
	return nil
}

func (s *FirestoreStore) DeleteTopping(ctx context.Context, id string) error {
	if _, err := s.client.Collection(toppingsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete topping %s: %w", id, err)
	}
	return nil
}
