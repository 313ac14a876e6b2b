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

type firestoreTestimonialRepository struct {
	client *firestore.Client
}

func NewFirestoreTestimonialRepository(client *firestore.Client) repository.TestimonialRepository {
	return &firestoreTestimonialRepository{
		client: client,
	}
}

func (r *firestoreTestimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	if testimonial.ID == "" {
		doc := r.client.Collection("testimonials").NewDoc()
		testimonial.ID = doc.ID
	}

	if testimonial.CreatedAt.IsZero() {
		testimonial.CreatedAt = time.Now()
	}

	if _, err := r.client.Collection("testimonials").Doc(testimonial.ID).Set(ctx, testimonial); err != nil {
		return errors.Internal("Failed to create testimonial", err)
	}

	return nil
}

func (r *firestoreTestimonialRepository) GetByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	doc, err := r.client.Collection("testimonials").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Testimonial", err)
		}
		return nil, errors.Internal("Failed to get testimonial", err)
	}

	var testimonial entity.Testimonial
	if err := doc.DataTo(&testimonial); err != nil {
		return nil, errors.Internal("Failed to parse testimonial data", err)
	}

	return &testimonial, nil
}

func (r *firestoreTestimonialRepository) List(ctx context.Context, onlyActive bool) ([]*entity.Testimonial, error) {
	query := r.client.Collection("testimonials").Query
	if onlyActive {
		query = query.Where("active", "==", true)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var testimonials []*entity.Testimonial
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate testimonials", err)
		}

		var testimonial entity.Testimonial
		if err := doc.DataTo(&testimonial); err != nil {
			return nil, errors.Internal("Failed to parse testimonial data", err)
		}
		testimonials = append(testimonials, &testimonial)
	}

	return testimonials, nil
}

func (r *firestoreTestimonialRepository) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	if _, err := r.client.Collection("testimonials").Doc(testimonial.ID).Set(ctx, testimonial); err != nil {
		return errors.Internal("Failed to update testimonial", err)
	}

	return nil
}

func (r *firestoreTestimonialRepository) UpdateActive(ctx context.Context, id string, active bool) error {
	_, err := r.client.Collection("testimonials").Doc(id).Update(ctx, []firestore.Update{
		{Path: "active", Value: active},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Testimonial", err)
		}
		return errors.Internal("Failed to update testimonial active flag", err)
	}

	return nil
}

func (r *firestoreTestimonialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("testimonials").Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound || status.Code(err) == codes.FailedPrecondition {
			return errors.NotFound("Testimonial", err)
		}
		return errors.Internal("Failed to delete testimonial", err)
	}

	return nil
}
