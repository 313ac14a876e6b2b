package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tiendapanel/internal/domain/entity"
	"tiendapanel/internal/domain/repository"
	"tiendapanel/pkg/errors"
)

// statsDocID is the single aggregate document the store keeps up to date;
// this layer only ever reads it.
const statsDocID = "summary"

type firestoreStatsRepository struct {
	client *firestore.Client
}

func NewFirestoreStatsRepository(client *firestore.Client) repository.StatsRepository {
	return &firestoreStatsRepository{
		client: client,
	}
}

func (r *firestoreStatsRepository) Get(ctx context.Context) (*entity.AdminStats, error) {
	doc, err := r.client.Collection("admin_stats").Doc(statsDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Stats", err)
		}
		return nil, errors.Internal("Failed to get stats", err)
	}

	var stats entity.AdminStats
	if err := doc.DataTo(&stats); err != nil {
		return nil, errors.Internal("Failed to parse stats data", err)
	}

	return &stats, nil
}
