package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Graphi-api/internal/domain/money"
	"github.com/jhoicas/Graphi-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback de todo lo escrito; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Converter conversión de montos entre monedas.
// Devuelve *domain.ConversionUnavailableError si no conoce la tasa del par.
type Converter interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
	Convert(ctx context.Context, amount money.Money, to string) (money.Money, error)
}
