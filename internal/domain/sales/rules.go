package sales

import (
	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
)

// ValidateQuantity rechaza cantidades cero o negativas.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// CheckCommit verifica las precondiciones de una venta contra el estado actual del producto:
// cantidad positiva, producto de la misma tienda y stock suficiente.
// No modifica el producto.
func CheckCommit(product *entity.Product, storeID string, quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.StoreID != storeID {
		return domain.ErrForbidden
	}
	if quantity > product.Quantity {
		return &domain.InsufficientInventoryError{
			ProductID: product.ID,
			Requested: quantity,
			Available: product.Quantity,
		}
	}
	return nil
}
