package repository

import (
	"context"

	"tiendapanel/internal/domain/entity"
)

type SettingsRepository interface {
	List(ctx context.Context) ([]*entity.Setting, error)
	Get(ctx context.Context, key string) (*entity.Setting, error)
	// Upsert inserts or replaces by key; writing an existing key never
	// conflicts.
	Upsert(ctx context.Context, setting *entity.Setting) error
	UpsertAll(ctx context.Context, settings []*entity.Setting) error
}
