package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tiendapanel/internal/domain/entity"
	"tiendapanel/internal/domain/repository"
)

const recentOrderCount = 5

type DashboardUseCase struct {
	statsRepo repository.StatsRepository
	orderRepo repository.OrderRepository
}

func NewDashboardUseCase(statsRepo repository.StatsRepository, orderRepo repository.OrderRepository) *DashboardUseCase {
	return &DashboardUseCase{
		statsRepo: statsRepo,
		orderRepo: orderRepo,
	}
}

type DashboardView struct {
	Stats        *entity.AdminStats `json:"stats"`
	RecentOrders []*entity.Order    `json:"recent_orders"`
}

// LoadDashboard reads the store-computed aggregate and the latest orders
// concurrently and joins them before returning.
func (uc *DashboardUseCase) LoadDashboard(ctx context.Context) (*DashboardView, error) {
	view := &DashboardView{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := uc.statsRepo.Get(gctx)
		if err != nil {
			return err
		}
		view.Stats = stats
		return nil
	})
	g.Go(func() error {
		orders, err := uc.orderRepo.List(gctx)
		if err != nil {
			return err
		}
		if len(orders) > recentOrderCount {
			orders = orders[:recentOrderCount]
		}
		view.RecentOrders = orders
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return view, nil
}
