package handler

import (
	"tiendapanel/internal/usecase"
	"tiendapanel/pkg/response"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	view, err := h.dashboardUseCase.LoadDashboard(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, view)
}
