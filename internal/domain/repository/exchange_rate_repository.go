package repository

import (
	"context"

	"github.com/jhoicas/Graphi-api/internal/domain/entity"
)

// ExchangeRateRepository tasas de cambio relativas a una moneda base.
type ExchangeRateRepository interface {
	// Get devuelve nil si no hay tasa para el par.
	Get(ctx context.Context, base, currency string) (*entity.ExchangeRate, error)
	UpsertMany(ctx context.Context, rates []entity.ExchangeRate) error
}
