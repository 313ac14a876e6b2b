package router

import (
	"github.com/labstack/echo/v4"

	"tiendapanel/internal/adapter/api/handler"
	"tiendapanel/internal/adapter/api/middleware"
)

func SetupNewsletterRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	newsletterHandler := handler.GetNewsletterHandler()

	// Signup is the storefront's only write.
	e.POST("/v1/newsletter/subscribe", newsletterHandler.Subscribe)

	admin := e.Group("/v1/admin/newsletter")
	admin.Use(authMiddleware.Authenticate)
	admin.GET("/subscribers", newsletterHandler.ListSubscribers)
	admin.DELETE("/subscribers/:email", newsletterHandler.Unsubscribe)
}
