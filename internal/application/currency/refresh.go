package currency

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
	"github.com/jhoicas/Graphi-api/internal/domain/money"
	"github.com/jhoicas/Graphi-api/internal/domain/repository"
	"github.com/jhoicas/Graphi-api/pkg/logger"
)

// RateProvider fuente externa de tasas (API HTTP).
type RateProvider interface {
	Latest(ctx context.Context, base string) (rates map[string]decimal.Decimal, asOf time.Time, err error)
}

// RefreshUseCase mantiene actualizada la tabla de tasas.
type RefreshUseCase struct {
	base     string
	provider RateProvider
	repo     repository.ExchangeRateRepository
	cache    RateCache
	log      *logger.Logger
}

// NewRefreshUseCase construye el caso de uso. provider y cache pueden ser nil.
func NewRefreshUseCase(base string, provider RateProvider, repo repository.ExchangeRateRepository, cache RateCache, log *logger.Logger) *RefreshUseCase {
	return &RefreshUseCase{
		base:     base,
		provider: provider,
		repo:     repo,
		cache:    cache,
		log:      logger.OrNop(log).Named("rates"),
	}
}

// Refresh descarga las tasas del proveedor, las guarda y limpia la caché.
// Devuelve cuántas tasas se guardaron. Se omiten códigos desconocidos y tasas no positivas.
func (uc *RefreshUseCase) Refresh(ctx context.Context) (int, error) {
	if uc.provider == nil {
		return 0, fmt.Errorf("refresh rates: %w: proveedor no configurado", domain.ErrConflict)
	}
	latest, asOf, err := uc.provider.Latest(ctx, uc.base)
	if err != nil {
		return 0, fmt.Errorf("refresh rates: %w", err)
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}

	rates := make([]entity.ExchangeRate, 0, len(latest))
	for code, rate := range latest {
		cur, err := money.ParseCurrency(code)
		if err != nil || !rate.IsPositive() || cur == uc.base {
			uc.log.Debug().Str("currency", code).Str("rate", rate.String()).Msg("tasa omitida")
			continue
		}
		rates = append(rates, entity.ExchangeRate{Base: uc.base, Currency: cur, Rate: rate, UpdatedAt: asOf})
	}
	if err := uc.repo.UpsertMany(ctx, rates); err != nil {
		return 0, err
	}
	uc.invalidate(ctx)

	uc.log.Info().Str("base", uc.base).Int("rates", len(rates)).Time("as_of", asOf).Msg("tasas de cambio actualizadas")
	return len(rates), nil
}

// SetRate guarda una tasa manual base→currency.
func (uc *RefreshUseCase) SetRate(ctx context.Context, currencyCode string, rate decimal.Decimal) (*entity.ExchangeRate, error) {
	cur, err := money.ParseCurrency(currencyCode)
	if err != nil {
		return nil, err
	}
	if cur == uc.base || !rate.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	r := entity.ExchangeRate{Base: uc.base, Currency: cur, Rate: rate, UpdatedAt: time.Now()}
	if err := uc.repo.UpsertMany(ctx, []entity.ExchangeRate{r}); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return &r, nil
}

func (uc *RefreshUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, uc.base); err != nil {
		uc.log.Warn().Err(err).Msg("invalidar caché de tasas")
	}
}
