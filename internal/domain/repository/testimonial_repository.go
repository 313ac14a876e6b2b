package repository

import (
	"context"

	"tiendapanel/internal/domain/entity"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	GetByID(ctx context.Context, id string) (*entity.Testimonial, error)
	List(ctx context.Context, onlyActive bool) ([]*entity.Testimonial, error)
	Update(ctx context.Context, testimonial *entity.Testimonial) error
	UpdateActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
