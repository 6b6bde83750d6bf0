package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Graphi-api/internal/application/dto"
	"github.com/jhoicas/Graphi-api/internal/domain"
)

func TestStoreUseCase_Create(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()

	s, err := f.stores.Create(ctx, dto.CreateStoreRequest{OwnerID: "o", Name: " Lagos ", Currency: "usd"})
	require.NoError(t, err)
	assert.Equal(t, "Lagos", s.Name)
	assert.Equal(t, "USD", s.Currency)

	d, err := f.stores.Create(ctx, dto.CreateStoreRequest{OwnerID: "o", Name: "Abuja"})
	require.NoError(t, err)
	assert.Equal(t, "NGN", d.Currency)

	_, err = f.stores.Create(ctx, dto.CreateStoreRequest{Name: "x", Currency: "nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)
	_, err = f.stores.Create(ctx, dto.CreateStoreRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := f.stores.List(ctx, "o", 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Abuja", list.Items[0].Name)

	_, err = f.stores.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogUseCase_GroupsAndBrands(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()
	storeID := f.newStore(t, "Main")

	for _, name := range []string{"Shoes", "Bags"} {
		_, err := f.catalog.CreateGroup(ctx, storeID, dto.CreateCatalogItemRequest{Name: name})
		require.NoError(t, err)
	}
	groups, err := f.catalog.ListGroups(ctx, storeID)
	require.NoError(t, err)
	require.Len(t, groups.Items, 2)
	assert.Equal(t, "Bags", groups.Items[0].Name)

	_, err = f.catalog.CreateBrand(ctx, storeID, dto.CreateCatalogItemRequest{Name: "Acme"})
	require.NoError(t, err)
	brands, err := f.catalog.ListBrands(ctx, storeID)
	require.NoError(t, err)
	assert.Len(t, brands.Items, 1)

	_, err = f.catalog.CreateGroup(ctx, "missing", dto.CreateCatalogItemRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.catalog.CreateBrand(ctx, storeID, dto.CreateCatalogItemRequest{Name: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
