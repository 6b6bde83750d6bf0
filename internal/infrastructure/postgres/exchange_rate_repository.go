package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Graphi-api/internal/domain/entity"
	"github.com/jhoicas/Graphi-api/internal/domain/repository"
)

var _ repository.ExchangeRateRepository = (*ExchangeRateRepo)(nil)

// ExchangeRateRepo tasas de cambio sobre PostgreSQL.
type ExchangeRateRepo struct {
	pool *pgxpool.Pool
}

// NewExchangeRateRepository construye el adaptador.
func NewExchangeRateRepository(pool *pgxpool.Pool) *ExchangeRateRepo {
	return &ExchangeRateRepo{pool: pool}
}

// Get devuelve la tasa base→currency (nil si no existe).
func (r *ExchangeRateRepo) Get(ctx context.Context, base, currency string) (*entity.ExchangeRate, error) {
	var rate entity.ExchangeRate
	err := r.pool.QueryRow(ctx,
		`SELECT base, currency, rate, updated_at FROM exchange_rates WHERE base = $1 AND currency = $2`,
		base, currency,
	).Scan(&rate.Base, &rate.Currency, &rate.Rate, &rate.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exchange rate: %w", err)
	}
	return &rate, nil
}

// UpsertMany inserta o actualiza las tasas en un solo batch transaccional.
func (r *ExchangeRateRepo) UpsertMany(ctx context.Context, rates []entity.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, rate := range rates {
		batch.Queue(`
			INSERT INTO exchange_rates (base, currency, rate, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (base, currency) DO UPDATE SET rate = EXCLUDED.rate, updated_at = EXCLUDED.updated_at`,
			rate.Base, rate.Currency, rate.Rate, rate.UpdatedAt,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert exchange rates: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit exchange rates: %w", err)
	}
	return nil
}
