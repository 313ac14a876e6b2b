package router

import (
	"github.com/labstack/echo/v4"

	"tiendapanel/internal/adapter/api/handler"
	"tiendapanel/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	admin := e.Group("/v1/admin/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.GET("", orderHandler.ListOrders)
	admin.GET("/:id", orderHandler.GetOrder)
	admin.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
	admin.DELETE("/:id", orderHandler.DeleteOrder)
}
