package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate cuántas unidades de Currency equivalen a 1 unidad de Base.
type ExchangeRate struct {
	Base      string
	Currency  string
	Rate      decimal.Decimal
	UpdatedAt time.Time
}
