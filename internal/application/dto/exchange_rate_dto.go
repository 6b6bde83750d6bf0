package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetExchangeRateRequest entrada para fijar manualmente una tasa base→moneda.
type SetExchangeRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// ExchangeRateResponse salida de una tasa.
type ExchangeRateResponse struct {
	Base      string          `json:"base"`
	Currency  string          `json:"currency"`
	Rate      decimal.Decimal `json:"rate"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RefreshRatesResponse resultado de un refresco de tasas.
type RefreshRatesResponse struct {
	Updated int `json:"updated"`
}
