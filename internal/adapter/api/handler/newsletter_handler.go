package handler

import (
	"tiendapanel/internal/usecase"
	"tiendapanel/pkg/response"

	"github.com/labstack/echo/v4"
)

type NewsletterHandler struct {
	newsletterUseCase *usecase.NewsletterUseCase
}

func NewNewsletterHandler(newsletterUseCase *usecase.NewsletterUseCase) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterUseCase: newsletterUseCase,
	}
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *NewsletterHandler) ListSubscribers(c echo.Context) error {
	subscribers, err := h.newsletterUseCase.ListSubscribers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, subscribers)
}

// Subscribe is the one public write in the system. A repeat signup comes back
// as a 409 with a message the storefront can show as-is.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	subscriber, err := h.newsletterUseCase.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, subscriber)
}

func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	if err := h.newsletterUseCase.Unsubscribe(c.Request().Context(), c.Param("email")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Unsubscribed successfully",
	})
}
