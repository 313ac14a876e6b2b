package router

import (
	"github.com/labstack/echo/v4"

	"tiendapanel/internal/adapter/api/handler"
	"tiendapanel/internal/adapter/api/middleware"
)

func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()
	categoryHandler := handler.GetCategoryHandler()

	// Storefront reads are public; they only ever see active rows via the
	// query params the frontend sends.
	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)
	e.GET("/v1/products/slug/:slug", productHandler.GetProductBySlug)

	categories := e.Group("/v1/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/slug/:slug", categoryHandler.GetCategoryBySlug)

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)

	admin.GET("/catalog", categoryHandler.LoadCatalog)

	admin.POST("/products", productHandler.CreateProduct)
	admin.PUT("/products/:id", productHandler.UpdateProduct)
	admin.DELETE("/products/:id", productHandler.DeleteProduct)
	admin.PATCH("/products/:id/active", productHandler.ToggleActive)
	admin.PATCH("/products/:id/stock", productHandler.UpdateStock)
	admin.POST("/products/images", productHandler.UploadImages)

	admin.POST("/categories", categoryHandler.CreateCategory)
	admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
	admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)
}
