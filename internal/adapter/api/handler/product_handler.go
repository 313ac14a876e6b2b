package handler

import (
	"tiendapanel/internal/usecase"
	"tiendapanel/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewProductHandler(catalogUseCase *usecase.CatalogUseCase) *ProductHandler {
	return &ProductHandler{
		catalogUseCase: catalogUseCase,
	}
}

type productRequest struct {
	Name         string   `json:"name" validate:"required"`
	Slug         string   `json:"slug" validate:"required"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" validate:"gte=0"`
	OldPrice     *float64 `json:"old_price,omitempty" validate:"omitempty,gte=0"`
	CategoryName string   `json:"category_name"`
	Images       []string `json:"images"`
	Sizes        []string `json:"sizes"`
	Colors       []string `json:"colors"`
	Features     []string `json:"features"`
	Stock        int      `json:"stock" validate:"gte=0"`
	Featured     bool     `json:"featured"`
	Bestseller   bool     `json:"bestseller"`
	Active       bool     `json:"active"`
	Tag          string   `json:"tag,omitempty"`
}

func (r productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:         r.Name,
		Slug:         r.Slug,
		Description:  r.Description,
		Price:        r.Price,
		OldPrice:     r.OldPrice,
		CategoryName: r.CategoryName,
		Images:       r.Images,
		Sizes:        r.Sizes,
		Colors:       r.Colors,
		Features:     r.Features,
		Stock:        r.Stock,
		Featured:     r.Featured,
		Bestseller:   r.Bestseller,
		Active:       r.Active,
		Tag:          r.Tag,
	}
}

// ListProducts serves both trust contexts: the storefront passes
// active=true, the admin passes nothing and sees inactive rows too.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	if category := c.QueryParam("category"); category != "" {
		products, err := h.catalogUseCase.ListProductsByCategory(ctx, category)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, products)
	}

	if c.QueryParam("featured") == "true" {
		products, err := h.catalogUseCase.ListFeaturedProducts(ctx)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, products)
	}

	onlyActive := c.QueryParam("active") == "true"
	products, err := h.catalogUseCase.ListProducts(ctx, onlyActive)
	if err != nil {
		return response.Error(c, err)
	}

	if q := c.QueryParam("q"); q != "" {
		products = usecase.FilterProducts(products, q)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUseCase.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) GetProductBySlug(c echo.Context) error {
	product, err := h.catalogUseCase.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.catalogUseCase.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.catalogUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalogUseCase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Product deleted successfully",
	})
}

type toggleActiveRequest struct {
	Active bool `json:"active"`
}

func (h *ProductHandler) ToggleActive(c echo.Context) error {
	var req toggleActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.catalogUseCase.ToggleProductActive(c.Request().Context(), c.Param("id"), req.Active)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

type updateStockRequest struct {
	Stock int `json:"stock" validate:"gte=0"`
}

func (h *ProductHandler) UpdateStock(c echo.Context) error {
	var req updateStockRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.catalogUseCase.UpdateProductStock(c.Request().Context(), c.Param("id"), req.Stock)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

// UploadImages accepts a multipart selection and uploads the files one at a
// time; when one fails, the URLs that already landed are still returned so
// the form keeps them.
func (h *ProductHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, err)
	}

	var uploads []usecase.ImageUpload
	var closers []func() error
	defer func() {
		for _, close := range closers {
			close()
		}
	}()

	for _, fh := range form.File["images"] {
		f, err := fh.Open()
		if err != nil {
			return response.Error(c, err)
		}
		closers = append(closers, f.Close)
		uploads = append(uploads, usecase.ImageUpload{Filename: fh.Filename, Content: f})
	}

	urls, err := h.catalogUseCase.UploadProductImages(c.Request().Context(), uploads)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"urls": urls,
	})
}
