package repository

import (
	"context"

	"tiendapanel/internal/domain/entity"
)

type NewsletterRepository interface {
	List(ctx context.Context) ([]*entity.Subscriber, error)
	// Subscribe fails with a CONFLICT error when the email is already
	// subscribed, distinguishable from any other store failure.
	Subscribe(ctx context.Context, email string) (*entity.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
}
