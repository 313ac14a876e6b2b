package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tiendapanel/internal/domain/entity"
	"tiendapanel/internal/domain/repository"
	"tiendapanel/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	taken, err := r.slugTaken(ctx, product.Slug, product.ID)
	if err != nil {
		return err
	}
	if taken {
		return errors.Conflict("A product with this slug already exists", nil)
	}

	if _, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product); err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	iter := r.client.Collection("products").
		Where("slug", "==", slug).
		Where("active", "==", true).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Product", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get product by slug", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, onlyActive bool) ([]*entity.Product, error) {
	query := r.client.Collection("products").Query
	if onlyActive {
		query = query.Where("active", "==", true)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreProductRepository) ListFeatured(ctx context.Context) ([]*entity.Product, error) {
	query := r.client.Collection("products").
		Where("active", "==", true).
		Where("featured", "==", true).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreProductRepository) ListByCategory(ctx context.Context, categoryName string) ([]*entity.Product, error) {
	query := r.client.Collection("products").
		Where("active", "==", true).
		Where("categoryName", "==", categoryName).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	taken, err := r.slugTaken(ctx, product.Slug, product.ID)
	if err != nil {
		return err
	}
	if taken {
		return errors.Conflict("A product with this slug already exists", nil)
	}

	if _, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product); err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) UpdateActive(ctx context.Context, id string, active bool) error {
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: "active", Value: active},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to update product active flag", err)
	}

	return nil
}

func (r *firestoreProductRepository) UpdateStock(ctx context.Context, id string, quantity int) error {
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: "stock", Value: quantity},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to update product stock", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound || status.Code(err) == codes.FailedPrecondition {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

// slugTaken reports whether another product already claims the slug.
// Firestore has no unique indexes, so uniqueness is enforced here with a
// read-before-write; a race between two writers is accepted, same as two
// sessions racing against the store's own constraint would be.
func (r *firestoreProductRepository) slugTaken(ctx context.Context, slug, selfID string) (bool, error) {
	iter := r.client.Collection("products").
		Where("slug", "==", slug).
		Limit(2).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return false, nil
		}
		if err != nil {
			return false, errors.Internal("Failed to check product slug", err)
		}
		if doc.Ref.ID != selfID {
			return true, nil
		}
	}
}

func (r *firestoreProductRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Product, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, nil
}
