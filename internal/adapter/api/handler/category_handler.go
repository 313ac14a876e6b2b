package handler

import (
	"tiendapanel/internal/usecase"
	"tiendapanel/pkg/response"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCategoryHandler(catalogUseCase *usecase.CatalogUseCase) *CategoryHandler {
	return &CategoryHandler{
		catalogUseCase: catalogUseCase,
	}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description,omitempty"`
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}

func (h *CategoryHandler) GetCategoryBySlug(c echo.Context) error {
	category, err := h.catalogUseCase.GetCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, category)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.catalogUseCase.CreateCategory(c.Request().Context(), usecase.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, category)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.catalogUseCase.UpdateCategory(c.Request().Context(), c.Param("id"), usecase.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, category)
}

// DeleteCategory removes only the category row; products keep whatever
// category name they carry.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	if err := h.catalogUseCase.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Category deleted successfully",
	})
}

// LoadCatalog returns products and categories in one shot for the admin
// panel's initial render.
func (h *CategoryHandler) LoadCatalog(c echo.Context) error {
	view, err := h.catalogUseCase.LoadCatalog(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, view)
}
