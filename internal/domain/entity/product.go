package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Graphi-api/internal/domain/money"
)

// Product representa un producto de una tienda con su inventario disponible.
// Quantity solo se modifica dentro de las transacciones de venta (commit/reverse).
type Product struct {
	ID          string
	StoreID     string
	GroupID     *string
	BrandID     *string
	Name        string
	Description string
	Price       money.Money // precio unitario con moneda
	Quantity    int         // stock disponible, nunca negativo
	Color       string
	Size        string
	Weight      *decimal.Decimal // gramos
	Category    string
	AddedAt     time.Time
	UpdatedAt   time.Time
}
