package usecase

import (
	"context"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"tiendapanel/internal/domain/entity"
	"tiendapanel/internal/domain/repository"
	"tiendapanel/pkg/errors"
)

type CatalogUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	storage      FileStorage
}

func NewCatalogUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	storage FileStorage,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		storage:      storage,
	}
}

type ProductInput struct {
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	OldPrice     *float64 `json:"old_price,omitempty"`
	CategoryName string   `json:"category_name"`
	Images       []string `json:"images"`
	Sizes        []string `json:"sizes"`
	Colors       []string `json:"colors"`
	Features     []string `json:"features"`
	Stock        int      `json:"stock"`
	Featured     bool     `json:"featured"`
	Bestseller   bool     `json:"bestseller"`
	Active       bool     `json:"active"`
	Tag          string   `json:"tag,omitempty"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// CatalogView is the admin page's working set: all products regardless of
// active state, plus all categories.
type CatalogView struct {
	Products   []*entity.Product  `json:"products"`
	Categories []*entity.Category `json:"categories"`
}

// LoadCatalog fetches products and categories concurrently; they populate
// disjoint state, so completion order does not matter.
func (uc *CatalogUseCase) LoadCatalog(ctx context.Context) (*CatalogView, error) {
	view := &CatalogView{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := uc.productRepo.List(gctx, false)
		if err != nil {
			return err
		}
		view.Products = products
		return nil
	})
	g.Go(func() error {
		categories, err := uc.categoryRepo.List(gctx)
		if err != nil {
			return err
		}
		view.Categories = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return view, nil
}

func (uc *CatalogUseCase) ListProducts(ctx context.Context, onlyActive bool) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx, onlyActive)
}

func (uc *CatalogUseCase) ListFeaturedProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.ListFeatured(ctx)
}

func (uc *CatalogUseCase) ListProductsByCategory(ctx context.Context, categoryName string) ([]*entity.Product, error) {
	return uc.productRepo.ListByCategory(ctx, categoryName)
}

// GetProductByID has admin semantics: inactive products are visible.
func (uc *CatalogUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// GetProductBySlug has storefront semantics: only active products resolve.
func (uc *CatalogUseCase) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return uc.productRepo.GetBySlug(ctx, slug)
}

func (uc *CatalogUseCase) CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:         input.Name,
		Slug:         input.Slug,
		Description:  input.Description,
		Price:        input.Price,
		OldPrice:     input.OldPrice,
		CategoryName: input.CategoryName,
		Images:       input.Images,
		Sizes:        input.Sizes,
		Colors:       input.Colors,
		Features:     input.Features,
		Stock:        input.Stock,
		Featured:     input.Featured,
		Bestseller:   input.Bestseller,
		Active:       input.Active,
		Tag:          input.Tag,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The slug comes in exactly as the form holds it; it is never rederived
	// from the name here. CreatedAt is immutable.
	product.Name = input.Name
	product.Slug = input.Slug
	product.Description = input.Description
	product.Price = input.Price
	product.OldPrice = input.OldPrice
	product.CategoryName = input.CategoryName
	product.Images = input.Images
	product.Sizes = input.Sizes
	product.Colors = input.Colors
	product.Features = input.Features
	product.Stock = input.Stock
	product.Featured = input.Featured
	product.Bestseller = input.Bestseller
	product.Active = input.Active
	product.Tag = input.Tag

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes the row only. Objects behind the product's image
// URLs are left in place; callers that want them gone use the storage
// client's DeleteFile explicitly.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	return uc.productRepo.Delete(ctx, id)
}

// ToggleProductActive flips only the active flag, so a stale copy of the
// rest of the record can never be written back by accident.
func (uc *CatalogUseCase) ToggleProductActive(ctx context.Context, id string, active bool) (*entity.Product, error) {
	if err := uc.productRepo.UpdateActive(ctx, id, active); err != nil {
		return nil, err
	}

	return uc.productRepo.GetByID(ctx, id)
}

func (uc *CatalogUseCase) UpdateProductStock(ctx context.Context, id string, quantity int) (*entity.Product, error) {
	if quantity < 0 {
		return nil, errors.BadRequest("Stock cannot be negative", nil)
	}

	if err := uc.productRepo.UpdateStock(ctx, id, quantity); err != nil {
		return nil, err
	}

	return uc.productRepo.GetByID(ctx, id)
}

type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// UploadProductImages uploads files one at a time, each awaited before the
// next begins. On failure it returns the URLs that already landed, so the
// caller keeps the successfully uploaded images and nothing else.
func (uc *CatalogUseCase) UploadProductImages(ctx context.Context, uploads []ImageUpload) ([]string, error) {
	var urls []string
	for _, up := range uploads {
		url, err := uc.storage.UploadFile(ctx, up.Content, up.Filename, "products")
		if err != nil {
			return urls, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}

func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

func (uc *CatalogUseCase) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return uc.categoryRepo.GetBySlug(ctx, slug)
}

func (uc *CatalogUseCase) CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (uc *CatalogUseCase) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*entity.Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Slug = input.Slug
	category.Description = input.Description

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory never cascades: products keep whatever category_name they
// reference, dangling or not.
func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, id string) error {
	return uc.categoryRepo.Delete(ctx, id)
}

// FilterProducts is the admin page's free-text search: a product matches
// when the query is a case-insensitive substring of its name or its
// category name. An empty query matches everything.
func FilterProducts(products []*entity.Product, query string) []*entity.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}

	var matched []*entity.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.CategoryName), query) {
			matched = append(matched, p)
		}
	}

	return matched
}

func validateProductInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.BadRequest("Product name is required", nil)
	}
	if strings.TrimSpace(input.Slug) == "" {
		return errors.BadRequest("Product slug is required", nil)
	}
	if input.Price < 0 {
		return errors.BadRequest("Price cannot be negative", nil)
	}
	if input.OldPrice != nil && *input.OldPrice < 0 {
		return errors.BadRequest("Old price cannot be negative", nil)
	}
	if input.Stock < 0 {
		return errors.BadRequest("Stock cannot be negative", nil)
	}
	return nil
}

func validateCategoryInput(input CategoryInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.BadRequest("Category name is required", nil)
	}
	if strings.TrimSpace(input.Slug) == "" {
		return errors.BadRequest("Category slug is required", nil)
	}
	return nil
}
