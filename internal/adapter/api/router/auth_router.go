package router

import (
	"github.com/labstack/echo/v4"

	"tiendapanel/internal/adapter/api/handler"
	"tiendapanel/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, authHandler *handler.AuthHandler) {
	auth := e.Group("/v1/auth")
	auth.Use(authMiddleware.Authenticate)
	auth.GET("/me", authHandler.Me)
	auth.POST("/sign-out", authHandler.SignOut)
}
