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

type firestoreCategoryRepository struct {
	client *firestore.Client
}

func NewFirestoreCategoryRepository(client *firestore.Client) repository.CategoryRepository {
	return &firestoreCategoryRepository{
		client: client,
	}
}

func (r *firestoreCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		doc := r.client.Collection("categories").NewDoc()
		category.ID = doc.ID
	}

	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}

	taken, err := r.slugTaken(ctx, category.Slug, category.ID)
	if err != nil {
		return err
	}
	if taken {
		return errors.Conflict("A category with this slug already exists", nil)
	}

	if _, err := r.client.Collection("categories").Doc(category.ID).Set(ctx, category); err != nil {
		return errors.Internal("Failed to create category", err)
	}

	return nil
}

func (r *firestoreCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	doc, err := r.client.Collection("categories").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Category", err)
		}
		return nil, errors.Internal("Failed to get category", err)
	}

	var category entity.Category
	if err := doc.DataTo(&category); err != nil {
		return nil, errors.Internal("Failed to parse category data", err)
	}

	return &category, nil
}

func (r *firestoreCategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	iter := r.client.Collection("categories").
		Where("slug", "==", slug).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Category", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get category by slug", err)
	}

	var category entity.Category
	if err := doc.DataTo(&category); err != nil {
		return nil, errors.Internal("Failed to parse category data", err)
	}

	return &category, nil
}

func (r *firestoreCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	iter := r.client.Collection("categories").
		OrderBy("name", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var categories []*entity.Category
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate categories", err)
		}

		var category entity.Category
		if err := doc.DataTo(&category); err != nil {
			return nil, errors.Internal("Failed to parse category data", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}

func (r *firestoreCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	taken, err := r.slugTaken(ctx, category.Slug, category.ID)
	if err != nil {
		return err
	}
	if taken {
		return errors.Conflict("A category with this slug already exists", nil)
	}

	if _, err := r.client.Collection("categories").Doc(category.ID).Set(ctx, category); err != nil {
		return errors.Internal("Failed to update category", err)
	}

	return nil
}

// Delete removes only the category row. Products referencing it by name are
// left untouched.
func (r *firestoreCategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("categories").Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound || status.Code(err) == codes.FailedPrecondition {
			return errors.NotFound("Category", err)
		}
		return errors.Internal("Failed to delete category", err)
	}

	return nil
}

func (r *firestoreCategoryRepository) slugTaken(ctx context.Context, slug, selfID string) (bool, error) {
	iter := r.client.Collection("categories").
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
			return false, errors.Internal("Failed to check category slug", err)
		}
		if doc.Ref.ID != selfID {
			return true, nil
		}
	}
}
