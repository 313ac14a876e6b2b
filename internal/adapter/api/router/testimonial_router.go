package router

import (
	"github.com/labstack/echo/v4"

	"tiendapanel/internal/adapter/api/handler"
	"tiendapanel/internal/adapter/api/middleware"
)

func SetupTestimonialRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	testimonialHandler := handler.GetTestimonialHandler()

	e.GET("/v1/testimonials", testimonialHandler.ListTestimonials)
	e.GET("/v1/testimonials/:id", testimonialHandler.GetTestimonial)

	admin := e.Group("/v1/admin/testimonials")
	admin.Use(authMiddleware.Authenticate)
	admin.POST("", testimonialHandler.CreateTestimonial)
	admin.PUT("/:id", testimonialHandler.UpdateTestimonial)
	admin.PATCH("/:id/active", testimonialHandler.ToggleActive)
	admin.DELETE("/:id", testimonialHandler.DeleteTestimonial)
}
