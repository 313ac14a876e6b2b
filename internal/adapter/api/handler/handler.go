package handler

import (
	"tiendapanel/internal/usecase"
)

var (
	productHandler     *ProductHandler
	categoryHandler    *CategoryHandler
	orderHandler       *OrderHandler
	testimonialHandler *TestimonialHandler
	newsletterHandler  *NewsletterHandler
	settingsHandler    *SettingsHandler
	dashboardHandler   *DashboardHandler
)

func Setup(
	catalogUseCase *usecase.CatalogUseCase,
	orderUseCase *usecase.OrderUseCase,
	testimonialUseCase *usecase.TestimonialUseCase,
	newsletterUseCase *usecase.NewsletterUseCase,
	settingsUseCase *usecase.SettingsUseCase,
	dashboardUseCase *usecase.DashboardUseCase,
) {
	productHandler = NewProductHandler(catalogUseCase)
	categoryHandler = NewCategoryHandler(catalogUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	testimonialHandler = NewTestimonialHandler(testimonialUseCase)
	newsletterHandler = NewNewsletterHandler(newsletterUseCase)
	settingsHandler = NewSettingsHandler(settingsUseCase)
	dashboardHandler = NewDashboardHandler(dashboardUseCase)
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetTestimonialHandler() *TestimonialHandler {
	return testimonialHandler
}

func GetNewsletterHandler() *NewsletterHandler {
	return newsletterHandler
}

func GetSettingsHandler() *SettingsHandler {
	return settingsHandler
}

func GetDashboardHandler() *DashboardHandler {
	return dashboardHandler
}
