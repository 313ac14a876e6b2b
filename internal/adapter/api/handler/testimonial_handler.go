package handler

import (
	"tiendapanel/internal/usecase"
	"tiendapanel/pkg/response"

	"github.com/labstack/echo/v4"
)

type TestimonialHandler struct {
	testimonialUseCase *usecase.TestimonialUseCase
}

func NewTestimonialHandler(testimonialUseCase *usecase.TestimonialUseCase) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialUseCase: testimonialUseCase,
	}
}

type testimonialRequest struct {
	Name    string `json:"name" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
	Image   string `json:"image,omitempty"`
	Active  bool   `json:"active"`
}

func (r testimonialRequest) toInput() usecase.TestimonialInput {
	return usecase.TestimonialInput{
		Name:    r.Name,
		Rating:  r.Rating,
		Comment: r.Comment,
		Image:   r.Image,
		Active:  r.Active,
	}
}

func (h *TestimonialHandler) ListTestimonials(c echo.Context) error {
	onlyActive := c.QueryParam("active") == "true"
	testimonials, err := h.testimonialUseCase.ListTestimonials(c.Request().Context(), onlyActive)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, testimonials)
}

func (h *TestimonialHandler) GetTestimonial(c echo.Context) error {
	testimonial, err := h.testimonialUseCase.GetTestimonial(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, testimonial)
}

func (h *TestimonialHandler) CreateTestimonial(c echo.Context) error {
	var req testimonialRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	testimonial, err := h.testimonialUseCase.CreateTestimonial(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, testimonial)
}

func (h *TestimonialHandler) UpdateTestimonial(c echo.Context) error {
	var req testimonialRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	testimonial, err := h.testimonialUseCase.UpdateTestimonial(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, testimonial)
}

func (h *TestimonialHandler) ToggleActive(c echo.Context) error {
	var req toggleActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	testimonial, err := h.testimonialUseCase.ToggleTestimonialActive(c.Request().Context(), c.Param("id"), req.Active)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, testimonial)
}

func (h *TestimonialHandler) DeleteTestimonial(c echo.Context) error {
	if err := h.testimonialUseCase.DeleteTestimonial(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Testimonial deleted successfully",
	})
}
