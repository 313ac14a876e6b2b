package router

import (
	"github.com/labstack/echo/v4"

	"tiendapanel/internal/adapter/api/handler"
	"tiendapanel/internal/adapter/api/middleware"
)

func SetupDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	admin := e.Group("/v1/admin/dashboard")
	admin.Use(authMiddleware.Authenticate)
	admin.GET("", dashboardHandler.GetDashboard)
}
