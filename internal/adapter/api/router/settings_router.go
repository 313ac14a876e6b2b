package router

import (
	"github.com/labstack/echo/v4"

	"tiendapanel/internal/adapter/api/handler"
	"tiendapanel/internal/adapter/api/middleware"
)

func SetupSettingsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	settingsHandler := handler.GetSettingsHandler()

	// The storefront reads settings to render contact info and shipping
	// prices, so the read side is public.
	e.GET("/v1/settings", settingsHandler.GetAllSettings)
	e.GET("/v1/settings/:key", settingsHandler.GetSetting)

	admin := e.Group("/v1/admin/settings")
	admin.Use(authMiddleware.Authenticate)
	admin.PUT("", settingsHandler.SetMultipleSettings)
	admin.PUT("/:key", settingsHandler.SetSetting)
}
