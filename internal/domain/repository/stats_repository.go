package repository

import (
	"context"

	"tiendapanel/internal/domain/entity"
)

type StatsRepository interface {
	Get(ctx context.Context) (*entity.AdminStats, error)
}
