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

type firestoreNewsletterRepository struct {
	client *firestore.Client
}

func NewFirestoreNewsletterRepository(client *firestore.Client) repository.NewsletterRepository {
	return &firestoreNewsletterRepository{
		client: client,
	}
}

func (r *firestoreNewsletterRepository) List(ctx context.Context) ([]*entity.Subscriber, error) {
	iter := r.client.Collection("newsletter").
		OrderBy("subscribedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var subscribers []*entity.Subscriber
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate subscribers", err)
		}

		var subscriber entity.Subscriber
		if err := doc.DataTo(&subscriber); err != nil {
			return nil, errors.Internal("Failed to parse subscriber data", err)
		}
		subscribers = append(subscribers, &subscriber)
	}

	return subscribers, nil
}

// Subscribe uses the email itself as the document id, so the store enforces
// uniqueness: a second subscription attempt fails with AlreadyExists and is
// surfaced as a CONFLICT the caller can tell apart from other failures.
func (r *firestoreNewsletterRepository) Subscribe(ctx context.Context, email string) (*entity.Subscriber, error) {
	subscriber := &entity.Subscriber{
		Email:        email,
		SubscribedAt: time.Now(),
	}

	_, err := r.client.Collection("newsletter").Doc(email).Create(ctx, subscriber)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, errors.Conflict("This email is already subscribed", err)
		}
		return nil, errors.Internal("Failed to subscribe email", err)
	}

	return subscriber, nil
}

func (r *firestoreNewsletterRepository) Unsubscribe(ctx context.Context, email string) error {
	_, err := r.client.Collection("newsletter").Doc(email).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound || status.Code(err) == codes.FailedPrecondition {
			return errors.NotFound("Subscriber", err)
		}
		return errors.Internal("Failed to unsubscribe email", err)
	}

	return nil
}
