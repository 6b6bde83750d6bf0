package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Graphi-api/internal/application/dto"
	"github.com/jhoicas/Graphi-api/internal/application/usecase"
	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
	"github.com/jhoicas/Graphi-api/internal/infrastructure/memory"
)

type catalogFixture struct {
	stores   *usecase.StoreUseCase
	catalog  *usecase.CatalogUseCase
	products *usecase.ProductUseCase
}

func newCatalogFixture() *catalogFixture {
	st := memory.NewStore()
	storeRepo := memory.NewStoreRepository(st)
	catalogRepo := memory.NewCatalogRepository(st)
	return &catalogFixture{
		stores:  usecase.NewStoreUseCase(storeRepo, ""),
		catalog: usecase.NewCatalogUseCase(catalogRepo, storeRepo),
		products: usecase.NewProductUseCase(
			memory.NewProductRepository(st), catalogRepo, storeRepo, memory.NewTxRunner(st), "",
		),
	}
}

func (f *catalogFixture) newStore(t *testing.T, name string) string {
	t.Helper()
	s, err := f.stores.Create(context.Background(), dto.CreateStoreRequest{OwnerID: "owner-1", Name: name})
	require.NoError(t, err)
	return s.ID
}

func TestProductUseCase_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()
	storeID := f.newStore(t, "Main")

	out, err := f.products.Create(ctx, storeID, dto.CreateProductRequest{
		Name:     "Widget",
		Price:    decimal.RequireFromString("10"),
		Quantity: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, "NGN", out.Price.Currency)
	assert.Equal(t, "10.00", out.Price.Amount)
	assert.Equal(t, entity.CategoryOthers, out.Category)
	assert.Equal(t, "Others", out.CategoryLabel)
	assert.Equal(t, 100, out.Quantity)
}

func TestProductUseCase_CreateValidation(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()
	storeID := f.newStore(t, "Main")
	otherID := f.newStore(t, "Other")
	foreignGroup, err := f.catalog.CreateGroup(ctx, otherID, dto.CreateCatalogItemRequest{Name: "Shoes"})
	require.NoError(t, err)

	cases := map[string]struct {
		in   dto.CreateProductRequest
		want error
	}{
		"precio negativo":      {dto.CreateProductRequest{Name: "x", Price: decimal.NewFromInt(-1)}, domain.ErrInvalidInput},
		"stock negativo":       {dto.CreateProductRequest{Name: "x", Quantity: -1}, domain.ErrInvalidInput},
		"categoría inválida":   {dto.CreateProductRequest{Name: "x", Category: "toys"}, domain.ErrInvalidInput},
		"moneda inválida":      {dto.CreateProductRequest{Name: "x", PriceCurrency: "XYZW"}, domain.ErrInvalidCurrency},
		"sin nombre":           {dto.CreateProductRequest{Name: "  "}, domain.ErrInvalidInput},
		"grupo de otra tienda": {dto.CreateProductRequest{Name: "x", GroupID: &foreignGroup.ID}, domain.ErrInvalidInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.products.Create(ctx, storeID, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err = f.products.Create(ctx, "missing-store", dto.CreateProductRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_UpdateAndRestock(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()
	storeID := f.newStore(t, "Main")
	brand, err := f.catalog.CreateBrand(ctx, storeID, dto.CreateCatalogItemRequest{Name: "Acme"})
	require.NoError(t, err)
	p, err := f.products.Create(ctx, storeID, dto.CreateProductRequest{Name: "Widget", Price: decimal.NewFromInt(10), Quantity: 5})
	require.NoError(t, err)

	price := decimal.RequireFromString("12.5")
	cur := "usd"
	qty := 40
	cat := entity.CategoryElectronics
	out, err := f.products.Update(ctx, storeID, p.ID, dto.UpdateProductRequest{
		Price:         &price,
		PriceCurrency: &cur,
		Quantity:      &qty,
		BrandID:       &brand.ID,
		Category:      &cat,
	})
	require.NoError(t, err)
	assert.Equal(t, "12.50", out.Price.Amount)
	assert.Equal(t, "USD", out.Price.Currency)
	assert.Equal(t, 40, out.Quantity)
	require.NotNil(t, out.BrandID)
	assert.Equal(t, brand.ID, *out.BrandID)

	got, err := f.products.GetByID(ctx, storeID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.Quantity)

	neg := -1
	_, err = f.products.Update(ctx, storeID, p.ID, dto.UpdateProductRequest{Quantity: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_ScopedToStore(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()
	storeID := f.newStore(t, "Main")
	otherID := f.newStore(t, "Other")
	p, err := f.products.Create(ctx, storeID, dto.CreateProductRequest{Name: "Widget"})
	require.NoError(t, err)

	_, err = f.products.GetByID(ctx, otherID, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.products.Delete(ctx, otherID, p.ID), domain.ErrNotFound)

	require.NoError(t, f.products.Delete(ctx, storeID, p.ID))
	_, err = f.products.GetByID(ctx, storeID, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_ListOrderedByName(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()
	storeID := f.newStore(t, "Main")
	for _, name := range []string{"Zebra", "Apple", "Mango"} {
		_, err := f.products.Create(ctx, storeID, dto.CreateProductRequest{Name: name})
		require.NoError(t, err)
	}

	out, err := f.products.List(ctx, storeID, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, "Apple", out.Items[0].Name)
	assert.Equal(t, "Mango", out.Items[1].Name)
	assert.Equal(t, "Zebra", out.Items[2].Name)
}
