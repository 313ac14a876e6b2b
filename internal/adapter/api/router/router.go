package router

import (
	"github.com/labstack/echo/v4"

	"tiendapanel/internal/adapter/api/handler"
	"tiendapanel/internal/adapter/api/middleware"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	wsHandler *handler.WebSocketHandler,
) {
	SetupAuthRouter(e, authMiddleware, authHandler)
	SetupCatalogRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupTestimonialRouter(e, authMiddleware)
	SetupNewsletterRouter(e, authMiddleware)
	SetupSettingsRouter(e, authMiddleware)
	SetupDashboardRouter(e, authMiddleware)
	SetupWebSocketRouter(e, authMiddleware, wsHandler)
}
