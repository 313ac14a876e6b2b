package repository

import (
	"context"

	"tiendapanel/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetBySlug carries storefront semantics: it only matches active rows.
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	List(ctx context.Context, onlyActive bool) ([]*entity.Product, error)
	ListFeatured(ctx context.Context) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, categoryName string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateActive(ctx context.Context, id string, active bool) error
	UpdateStock(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
}
