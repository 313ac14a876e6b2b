package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tiendapanel/internal/domain/entity"
	"tiendapanel/pkg/errors"
)

func newCatalogFixture() (*CatalogUseCase, *memProductRepo, *memCategoryRepo, *fakeStorage) {
	productRepo := newMemProductRepo()
	categoryRepo := newMemCategoryRepo()
	storage := &fakeStorage{}
	return NewCatalogUseCase(productRepo, categoryRepo, storage), productRepo, categoryRepo, storage
}

func productInput(name, slug string) ProductInput {
	return ProductInput{
		Name:         name,
		Slug:         slug,
		Description:  "algodon peinado",
		Price:        8999.90,
		CategoryName: "Remeras",
		Images:       []string{"https://storage.googleapis.com/images/products/1_a.jpg"},
		Sizes:        []string{"S", "M", "L"},
		Colors:       []string{"negro", "blanco"},
		Stock:        10,
		Active:       true,
	}
}

func TestCreateProductRoundTrip(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	input := productInput("Remera Oversize", "remera-oversize")
	created, err := uc.CreateProduct(ctx, input)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := uc.GetProductByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Slug, got.Slug)
	assert.Equal(t, input.Price, got.Price)
	assert.Equal(t, input.Sizes, got.Sizes)
}

func TestCreateProductDuplicateSlugConflicts(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	first, err := uc.CreateProduct(ctx, productInput("Remera A", "remera"))
	assert.NoError(t, err)

	_, err = uc.CreateProduct(ctx, productInput("Remera B", "remera"))
	assert.Error(t, err)
	assert.True(t, errors.IsConflict(err))

	// The first product is unaffected by the failed create.
	got, err := uc.GetProductByID(ctx, first.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Remera A", got.Name)

	all, err := uc.ListProducts(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateProductValidation(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	tests := []struct {
		name  string
		input ProductInput
	}{
		{"empty name", productInput("   ", "slug")},
		{"empty slug", productInput("Remera", "")},
		{"negative price", func() ProductInput {
			in := productInput("Remera", "remera")
			in.Price = -1
			return in
		}()},
		{"negative stock", func() ProductInput {
			in := productInput("Remera", "remera")
			in.Stock = -1
			return in
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateProduct(ctx, tt.input)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, "BAD_REQUEST"))
		})
	}
}

func TestListOnlyActiveIsOrderedSubset(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	inactive := productInput("Vieja", "vieja")
	inactive.Active = false

	uc.CreateProduct(ctx, productInput("Primera", "primera"))
	uc.CreateProduct(ctx, inactive)
	uc.CreateProduct(ctx, productInput("Tercera", "tercera"))

	all, err := uc.ListProducts(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := uc.ListProducts(ctx, true)
	assert.NoError(t, err)
	assert.Len(t, active, 2)

	// Same relative order as the full listing: most recent first.
	assert.Equal(t, "tercera", active[0].Slug)
	assert.Equal(t, "primera", active[1].Slug)
	for _, p := range active {
		assert.True(t, p.Active)
	}
}

func TestGetProductBySlugIsStorefrontOnly(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	hidden := productInput("Oculta", "oculta")
	hidden.Active = false
	uc.CreateProduct(ctx, hidden)
	uc.CreateProduct(ctx, productInput("Visible", "visible"))

	_, err := uc.GetProductBySlug(ctx, "oculta")
	assert.True(t, errors.IsNotFound(err))

	got, err := uc.GetProductBySlug(ctx, "visible")
	assert.NoError(t, err)
	assert.Equal(t, "Visible", got.Name)
}

func TestUpdateProductKeepsSlugAndCreatedAt(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, productInput("Remera Vieja", "remera-vieja"))
	assert.NoError(t, err)

	// Editing the name sends the form's existing slug back untouched.
	input := productInput("Remera Nueva 2024", created.Slug)
	updated, err := uc.UpdateProduct(ctx, created.ID, input)
	assert.NoError(t, err)
	assert.Equal(t, "Remera Nueva 2024", updated.Name)
	assert.Equal(t, "remera-vieja", updated.Slug)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateProductSlugConflict(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	uc.CreateProduct(ctx, productInput("Una", "una"))
	other, _ := uc.CreateProduct(ctx, productInput("Otra", "otra"))

	_, err := uc.UpdateProduct(ctx, other.ID, productInput("Otra", "una"))
	assert.True(t, errors.IsConflict(err))
}

func TestDeleteProduct(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	created, _ := uc.CreateProduct(ctx, productInput("Remera", "remera"))

	assert.NoError(t, uc.DeleteProduct(ctx, created.ID))

	all, _ := uc.ListProducts(ctx, false)
	assert.Empty(t, all)

	err := uc.DeleteProduct(ctx, "no-such-id")
	assert.True(t, errors.IsNotFound(err))
}

func TestToggleProductActiveTouchesOnlyTheFlag(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	created, _ := uc.CreateProduct(ctx, productInput("Remera", "remera"))

	toggled, err := uc.ToggleProductActive(ctx, created.ID, false)
	assert.NoError(t, err)
	assert.False(t, toggled.Active)
	assert.Equal(t, created.Name, toggled.Name)
	assert.Equal(t, created.Stock, toggled.Stock)
	assert.Equal(t, created.Slug, toggled.Slug)
}

func TestUpdateProductStock(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	created, _ := uc.CreateProduct(ctx, productInput("Remera", "remera"))

	updated, err := uc.UpdateProductStock(ctx, created.ID, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)

	_, err = uc.UpdateProductStock(ctx, created.ID, -1)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUploadProductImagesIsSequentialAndKeepsPartialResults(t *testing.T) {
	uc, _, _, storage := newCatalogFixture()
	ctx := context.Background()

	storage.fail = true
	storage.failAfter = 2

	uploads := []ImageUpload{
		{Filename: "a.jpg", Content: strings.NewReader("a")},
		{Filename: "b.jpg", Content: strings.NewReader("b")},
		{Filename: "c.jpg", Content: strings.NewReader("c")},
	}

	urls, err := uc.UploadProductImages(ctx, uploads)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, "ASSET_ERROR"))
	// The two files that landed before the failure are kept.
	assert.Len(t, urls, 2)
	assert.Equal(t, storage.uploads, urls)
}

func TestLoadCatalogReturnsBothSets(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	uc.CreateProduct(ctx, productInput("Remera", "remera"))
	uc.CreateCategory(ctx, CategoryInput{Name: "Remeras", Slug: "remeras"})
	uc.CreateCategory(ctx, CategoryInput{Name: "Buzos", Slug: "buzos"})

	view, err := uc.LoadCatalog(ctx)
	assert.NoError(t, err)
	assert.Len(t, view.Products, 1)
	assert.Len(t, view.Categories, 2)
	// Categories come back ordered by name ascending.
	assert.Equal(t, "Buzos", view.Categories[0].Name)
	assert.Equal(t, "Remeras", view.Categories[1].Name)
}

func TestDeleteCategoryLeavesProductsDangling(t *testing.T) {
	uc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	category, _ := uc.CreateCategory(ctx, CategoryInput{Name: "Remeras", Slug: "remeras"})
	product, _ := uc.CreateProduct(ctx, productInput("Remera", "remera"))

	assert.NoError(t, uc.DeleteCategory(ctx, category.ID))

	// No cascade: the product still references the deleted category by name.
	got, err := uc.GetProductByID(ctx, product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Remeras", got.CategoryName)
}

func TestFilterProducts(t *testing.T) {
	remera := &entity.Product{Name: "Remera Oversize", CategoryName: "Remeras"}
	buzo := &entity.Product{Name: "Buzo Canguro", CategoryName: "Buzos"}
	products := []*entity.Product{remera, buzo}

	assert.Equal(t, products, FilterProducts(products, ""))
	assert.Equal(t, []*entity.Product{remera}, FilterProducts(products, "OVERSIZE"))
	// Category name matches too.
	assert.Equal(t, []*entity.Product{buzo}, FilterProducts(products, "buzos"))
	assert.Empty(t, FilterProducts(products, "zapatilla"))
}
