package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tiendapanel/internal/domain/entity"
	"tiendapanel/internal/domain/repository"
	"tiendapanel/pkg/errors"
)

type firestoreSettingsRepository struct {
	client *firestore.Client
}

func NewFirestoreSettingsRepository(client *firestore.Client) repository.SettingsRepository {
	return &firestoreSettingsRepository{
		client: client,
	}
}

func (r *firestoreSettingsRepository) List(ctx context.Context) ([]*entity.Setting, error) {
	iter := r.client.Collection("settings").Documents(ctx)
	defer iter.Stop()

	var settings []*entity.Setting
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate settings", err)
		}

		var setting entity.Setting
		if err := doc.DataTo(&setting); err != nil {
			return nil, errors.Internal("Failed to parse setting data", err)
		}
		settings = append(settings, &setting)
	}

	return settings, nil
}

func (r *firestoreSettingsRepository) Get(ctx context.Context, key string) (*entity.Setting, error) {
	doc, err := r.client.Collection("settings").Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Setting", err)
		}
		return nil, errors.Internal("Failed to get setting", err)
	}

	var setting entity.Setting
	if err := doc.DataTo(&setting); err != nil {
		return nil, errors.Internal("Failed to parse setting data", err)
	}

	return &setting, nil
}

// Upsert keys documents by the setting key itself; Set replaces any existing
// row, so writing an existing key never conflicts.
func (r *firestoreSettingsRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	if _, err := r.client.Collection("settings").Doc(setting.Key).Set(ctx, setting); err != nil {
		return errors.Internal("Failed to upsert setting", err)
	}

	return nil
}

func (r *firestoreSettingsRepository) UpsertAll(ctx context.Context, settings []*entity.Setting) error {
	bw := r.client.BulkWriter(ctx)
	for _, setting := range settings {
		if _, err := bw.Set(r.client.Collection("settings").Doc(setting.Key), setting); err != nil {
			bw.End()
			return errors.Internal("Failed to queue setting upsert", err)
		}
	}
	bw.End()

	return nil
}
