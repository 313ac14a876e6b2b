package usecase

import (
	"context"
	"strings"

	"tiendapanel/internal/domain/entity"
	"tiendapanel/internal/domain/repository"
	"tiendapanel/pkg/errors"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
	}
}

func (uc *OrderUseCase) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return uc.orderRepo.List(ctx)
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

// UpdateOrderStatus moves an order to any of the four statuses; there is no
// enforced ordering and no terminal state, so completed -> pending is as
// legal as pending -> completed. Only the status field is written.
func (uc *OrderUseCase) UpdateOrderStatus(ctx context.Context, id string, status string) (*entity.Order, error) {
	if !entity.IsValidOrderStatus(status) {
		return nil, errors.BadRequest("Invalid order status", nil)
	}

	if err := uc.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return uc.orderRepo.GetByID(ctx, id)
}

// DeleteOrder is permanent and unrecoverable.
func (uc *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	return uc.orderRepo.Delete(ctx, id)
}

// FilterOrders applies the two independent admin filters: an exact status
// match ("all" or empty passes everything) and a case-insensitive substring
// match on customer name or email. Both must pass.
func FilterOrders(orders []*entity.Order, status, query string) []*entity.Order {
	query = strings.ToLower(strings.TrimSpace(query))

	var matched []*entity.Order
	for _, o := range orders {
		if status != "" && status != "all" && o.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), query) &&
			!strings.Contains(strings.ToLower(o.CustomerEmail), query) {
			continue
		}
		matched = append(matched, o)
	}

	return matched
}

// CountByStatus computes the filter-chip counters from the unfiltered set,
// so the numbers stay stable while the user narrows the view.
func CountByStatus(orders []*entity.Order) map[string]int {
	counts := map[string]int{
		"all":                        len(orders),
		entity.OrderStatusPending:    0,
		entity.OrderStatusProcessing: 0,
		entity.OrderStatusCompleted:  0,
		entity.OrderStatusCancelled:  0,
	}
	for _, o := range orders {
		if _, ok := counts[o.Status]; ok {
			counts[o.Status]++
		}
	}

	return counts
}
