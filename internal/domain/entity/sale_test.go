package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
	"github.com/jhoicas/Graphi-api/internal/domain/money"
)

func widget() *entity.Product {
	return &entity.Product{
		ID:       "p-widget",
		StoreID:  "s-1",
		Name:     "Widget",
		Price:    money.Money{Amount: decimal.RequireFromString("10.00"), Currency: "NGN"},
		Quantity: 100,
		Category: entity.CategoryOthers,
	}
}

func TestSale_Revenue(t *testing.T) {
	s := &entity.Sale{ProductID: "p-widget", Quantity: 30, Product: widget()}
	revenue, err := s.Revenue()
	require.NoError(t, err)
	assert.Equal(t, "300.00 NGN", revenue.String())
}

func TestSale_RevenueUsesCurrentPrice(t *testing.T) {
	p := widget()
	s := &entity.Sale{ProductID: p.ID, Quantity: 3, Product: p}
	p.Price.Amount = decimal.RequireFromString("12.50")

	revenue, err := s.Revenue()
	require.NoError(t, err)
	assert.Equal(t, "37.50 NGN", revenue.String())
}

func TestSale_RevenueErrors(t *testing.T) {
	_, err := (&entity.Sale{Quantity: 1}).Revenue()
	assert.ErrorIs(t, err, domain.ErrProductNotLoaded)

	p := widget()
	p.Price.Currency = ""
	_, err = (&entity.Sale{Quantity: 1, Product: p}).Revenue()
	assert.ErrorIs(t, err, domain.ErrCurrencyUndefined)
}

func TestSale_Combine(t *testing.T) {
	p := widget()
	a := &entity.Sale{ID: "a", StoreID: "s-1", ProductID: p.ID, Quantity: 5, Product: p}
	b := &entity.Sale{ID: "b", StoreID: "s-1", ProductID: p.ID, Quantity: 3, Product: p}

	sum, err := a.Combine(b)
	require.NoError(t, err)
	assert.Empty(t, sum.ID)
	assert.Equal(t, 8, sum.Quantity)
	assert.Equal(t, p.ID, sum.ProductID)

	diff, err := a.CombineSubtract(b)
	require.NoError(t, err)
	assert.Equal(t, 2, diff.Quantity)

	// Los operandos no se modifican.
	assert.Equal(t, 5, a.Quantity)
	assert.Equal(t, 3, b.Quantity)
}

func TestSale_CombineSubtractMayGoNegative(t *testing.T) {
	a := &entity.Sale{ProductID: "p", Quantity: 2}
	b := &entity.Sale{ProductID: "p", Quantity: 5}
	diff, err := a.CombineSubtract(b)
	require.NoError(t, err)
	assert.Equal(t, -3, diff.Quantity)
}

func TestSale_CombineProductMismatch(t *testing.T) {
	a := &entity.Sale{ProductID: "p1", Quantity: 1}
	b := &entity.Sale{ProductID: "p2", Quantity: 1}

	_, err := a.Combine(b)
	assert.ErrorIs(t, err, domain.ErrProductMismatch)

	var mismatch *domain.ProductMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "p1", mismatch.Left)
	assert.Equal(t, "p2", mismatch.Right)

	_, err = a.CombineSubtract(b)
	assert.ErrorIs(t, err, domain.ErrProductMismatch)
}

func TestCategory(t *testing.T) {
	assert.True(t, entity.ValidCategory(entity.CategoryElectronics))
	assert.False(t, entity.ValidCategory("toys"))
	assert.Equal(t, "Fashion", entity.CategoryLabel(entity.CategoryFashion))
	assert.Empty(t, entity.CategoryLabel("toys"))
}
