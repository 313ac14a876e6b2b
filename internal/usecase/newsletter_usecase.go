package usecase

import (
	"context"
	"strings"

	"tiendapanel/internal/domain/entity"
	"tiendapanel/internal/domain/repository"
	"tiendapanel/pkg/errors"
)

type NewsletterUseCase struct {
	newsletterRepo repository.NewsletterRepository
}

func NewNewsletterUseCase(newsletterRepo repository.NewsletterRepository) *NewsletterUseCase {
	return &NewsletterUseCase{
		newsletterRepo: newsletterRepo,
	}
}

func (uc *NewsletterUseCase) ListSubscribers(ctx context.Context) ([]*entity.Subscriber, error) {
	return uc.newsletterRepo.List(ctx)
}

// Subscribe adds an email to the newsletter. A duplicate comes back as a
// CONFLICT so the caller can show "already subscribed" instead of a generic
// failure.
func (uc *NewsletterUseCase) Subscribe(ctx context.Context, email string) (*entity.Subscriber, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.BadRequest("A valid email is required", nil)
	}

	return uc.newsletterRepo.Subscribe(ctx, email)
}

func (uc *NewsletterUseCase) Unsubscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return errors.BadRequest("A valid email is required", nil)
	}

	return uc.newsletterRepo.Unsubscribe(ctx, email)
}
