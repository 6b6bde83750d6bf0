package entity

import (
	"time"

	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/money"
)

// Sale registro del libro de ventas: cantidad vendida de un producto en una tienda.
// Una vez creada no se modifica; se revierte eliminándola.
type Sale struct {
	ID        string
	StoreID   string
	ProductID string
	Quantity  int
	MadeAt    time.Time
	UpdatedAt time.Time

	// Product producto asociado (cargado por el repositorio) para calcular el ingreso.
	Product *Product
}

// Revenue devuelve Quantity × precio actual del producto, en la moneda del producto.
// El precio no se congela: refleja el precio vigente del producto.
func (s *Sale) Revenue() (money.Money, error) {
	if s.Product == nil {
		return money.Money{}, domain.ErrProductNotLoaded
	}
	if s.Product.Price.Currency == "" {
		return money.Money{}, domain.ErrCurrencyUndefined
	}
	return s.Product.Price.MulInt(s.Quantity), nil
}

// Combine suma dos ventas del mismo producto en una venta nueva sin persistir.
func (s *Sale) Combine(other *Sale) (*Sale, error) {
	return s.combine(other, other.Quantity)
}

// CombineSubtract resta la cantidad de other. Cero o negativos se permiten aquí;
// la validación de cantidad ocurre solo al registrar la venta.
func (s *Sale) CombineSubtract(other *Sale) (*Sale, error) {
	return s.combine(other, -other.Quantity)
}

func (s *Sale) combine(other *Sale, delta int) (*Sale, error) {
	if s.ProductID != other.ProductID {
		return nil, &domain.ProductMismatchError{Left: s.ProductID, Right: other.ProductID}
	}
	return &Sale{
		StoreID:   s.StoreID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity + delta,
		Product:   s.Product,
	}, nil
}
