package currency

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/Graphi-api/internal/application/sales"
	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/money"
	"github.com/jhoicas/Graphi-api/internal/domain/repository"
	"github.com/jhoicas/Graphi-api/pkg/logger"
)

var _ sales.Converter = (*Converter)(nil)

var one = decimal.NewFromInt(1)

// RateCache caché de tasas relativas a la base (Redis en producción).
type RateCache interface {
	// Get devuelve ok=false si no hay entrada.
	Get(ctx context.Context, base, currency string) (rate decimal.Decimal, ok bool, err error)
	Set(ctx context.Context, base, currency string, rate decimal.Decimal) error
	Invalidate(ctx context.Context, base string) error
}

// Converter convierte montos usando tasas guardadas relativas a una moneda base:
// tasa(from→to) = tasa(base→to) / tasa(base→from).
// Orden de búsqueda: caché → repositorio; las consultas concurrentes al repositorio por la
// misma moneda se agrupan en una sola (singleflight).
type Converter struct {
	base  string
	repo  repository.ExchangeRateRepository
	cache RateCache
	group singleflight.Group
	log   *logger.Logger
}

// NewConverter construye el conversor. cache y log pueden ser nil.
func NewConverter(base string, repo repository.ExchangeRateRepository, cache RateCache, log *logger.Logger) *Converter {
	return &Converter{
		base:  base,
		repo:  repo,
		cache: cache,
		log:   logger.OrNop(log).Named("currency"),
	}
}

// Base moneda base de las tasas.
func (c *Converter) Base() string { return c.base }

// Rate devuelve cuántas unidades de to equivalen a 1 unidad de from.
func (c *Converter) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == "" || to == "" {
		return decimal.Zero, domain.ErrCurrencyUndefined
	}
	if from == to {
		return one, nil
	}
	fromRate, ok, err := c.baseRate(ctx, from)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, &domain.ConversionUnavailableError{From: from, To: to}
	}
	toRate, ok, err := c.baseRate(ctx, to)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, &domain.ConversionUnavailableError{From: from, To: to}
	}
	return toRate.Div(fromRate), nil
}

// Convert convierte amount a la moneda to.
func (c *Converter) Convert(ctx context.Context, amount money.Money, to string) (money.Money, error) {
	rate, err := c.Rate(ctx, amount.Currency, to)
	if err != nil {
		return money.Money{}, err
	}
	return money.Money{Amount: amount.Amount.Mul(rate), Currency: to}, nil
}

// baseRate tasa base→currency. ok=false si no existe o no es positiva.
func (c *Converter) baseRate(ctx context.Context, currency string) (decimal.Decimal, bool, error) {
	if currency == c.base {
		return one, true, nil
	}
	if c.cache != nil {
		rate, ok, err := c.cache.Get(ctx, c.base, currency)
		if err != nil {
			// La caché es opcional: se sigue con el repositorio.
			c.log.Warn().Err(err).Str("currency", currency).Msg("lectura de caché de tasas")
		} else if ok {
			return rate, rate.IsPositive(), nil
		}
	}

	v, err, _ := c.group.Do(c.base+":"+currency, func() (any, error) {
		r, err := c.repo.Get(ctx, c.base, currency)
		if err != nil {
			return nil, fmt.Errorf("get exchange rate %s/%s: %w", c.base, currency, err)
		}
		if r == nil {
			return nil, nil
		}
		if c.cache != nil {
			if err := c.cache.Set(ctx, c.base, currency, r.Rate); err != nil {
				c.log.Warn().Err(err).Str("currency", currency).Msg("escritura de caché de tasas")
			}
		}
		return r.Rate, nil
	})
	if err != nil {
		return decimal.Zero, false, err
	}
	if v == nil {
		return decimal.Zero, false, nil
	}
	rate := v.(decimal.Decimal)
	return rate, rate.IsPositive(), nil
}
