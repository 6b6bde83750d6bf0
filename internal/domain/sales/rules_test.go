package sales_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
	"github.com/jhoicas/Graphi-api/internal/domain/sales"
)

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, sales.ValidateQuantity(1))
	assert.ErrorIs(t, sales.ValidateQuantity(0), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, sales.ValidateQuantity(-4), domain.ErrInvalidQuantity)
}

func TestCheckCommit(t *testing.T) {
	p := &entity.Product{ID: "p1", StoreID: "s1", Quantity: 70}

	assert.NoError(t, sales.CheckCommit(p, "s1", 70))
	assert.ErrorIs(t, sales.CheckCommit(p, "s1", 0), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, sales.CheckCommit(nil, "s1", 1), domain.ErrNotFound)
	assert.ErrorIs(t, sales.CheckCommit(p, "s2", 1), domain.ErrForbidden)

	err := sales.CheckCommit(p, "s1", 80)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
	var insufficient *domain.InsufficientInventoryError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 70, insufficient.Available)
	assert.Equal(t, 80, insufficient.Requested)
	assert.Equal(t, 70, p.Quantity)
}

func TestCheckCommit_QuantityCheckedFirst(t *testing.T) {
	// Cantidad inválida gana sobre producto inexistente.
	assert.ErrorIs(t, sales.CheckCommit(nil, "s1", -1), domain.ErrInvalidQuantity)
}
