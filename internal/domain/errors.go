package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrInvalidQuantity       = errors.New("la cantidad de la venta debe ser mayor que cero")
	ErrInsufficientInventory = errors.New("inventario insuficiente")
	ErrProductMismatch       = errors.New("no se pueden combinar ventas de productos distintos")
	ErrProductNotLoaded      = errors.New("la venta no tiene el producto cargado")
	ErrCurrencyUndefined     = errors.New("el precio no tiene moneda definida")
	ErrCurrencyMismatch      = errors.New("montos en monedas distintas")
	ErrInvalidCurrency       = errors.New("código de moneda inválido")
	ErrConversionUnavailable = errors.New("no hay tasa de cambio disponible")
)

// InsufficientInventoryError detalla una venta que supera el stock disponible.
type InsufficientInventoryError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("inventario insuficiente para %s: solicitado %d, disponible %d",
		e.ProductID, e.Requested, e.Available)
}

// Is permite errors.Is(err, ErrInsufficientInventory).
func (e *InsufficientInventoryError) Is(target error) bool {
	return target == ErrInsufficientInventory
}

// ProductMismatchError se devuelve al combinar ventas de productos distintos.
type ProductMismatchError struct {
	Left  string
	Right string
}

func (e *ProductMismatchError) Error() string {
	return fmt.Sprintf("no se pueden combinar ventas de productos distintos (%s, %s)", e.Left, e.Right)
}

func (e *ProductMismatchError) Is(target error) bool {
	return target == ErrProductMismatch
}

// ConversionUnavailableError indica el par de monedas sin tasa conocida.
type ConversionUnavailableError struct {
	From string
	To   string
}

func (e *ConversionUnavailableError) Error() string {
	return fmt.Sprintf("no hay tasa de cambio de %s a %s", e.From, e.To)
}

func (e *ConversionUnavailableError) Is(target error) bool {
	return target == ErrConversionUnavailable
}
