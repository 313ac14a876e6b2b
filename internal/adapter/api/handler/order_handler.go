package handler

import (
	"tiendapanel/internal/usecase"
	"tiendapanel/pkg/response"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// ListOrders returns the filtered rows plus per-status counts computed from
// the unfiltered set, so the filter chips stay stable while the user narrows
// the view.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUseCase.ListOrders(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	counts := usecase.CountByStatus(orders)
	filtered := usecase.FilterOrders(orders, c.QueryParam("status"), c.QueryParam("q"))

	return response.Success(c, map[string]interface{}{
		"orders": filtered,
		"counts": counts,
	})
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUseCase.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdateOrderStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	if err := h.orderUseCase.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Order deleted successfully",
	})
}
