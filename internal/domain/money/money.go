package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/jhoicas/Graphi-api/internal/domain"
)

// DefaultCurrency moneda por defecto de los precios (naira nigeriana).
const DefaultCurrency = "NGN"

// Money monto decimal con su código de moneda ISO-4217.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// ParseCurrency normaliza y valida un código ISO-4217 ("ngn" -> "NGN").
func ParseCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", domain.ErrInvalidCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidCurrency, code)
	}
	return unit.String(), nil
}

// New construye un monto validando la moneda.
func New(amount decimal.Decimal, code string) (Money, error) {
	cur, err := ParseCurrency(code)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: amount, Currency: cur}, nil
}

// Zero devuelve un monto cero en la moneda indicada.
func Zero(code string) Money {
	return Money{Amount: decimal.Zero, Currency: code}
}

// Add suma dos montos de la misma moneda.
func (m Money) Add(o Money) (Money, error) {
	if m.Currency != o.Currency {
		return Money{}, fmt.Errorf("%w: %s y %s", domain.ErrCurrencyMismatch, m.Currency, o.Currency)
	}
	return Money{Amount: m.Amount.Add(o.Amount), Currency: m.Currency}, nil
}

// MulInt multiplica el monto por una cantidad entera.
func (m Money) MulInt(n int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(n))), Currency: m.Currency}
}

// Round redondea a las unidades menores de la moneda (2 para NGN/USD, 0 para JPY).
func (m Money) Round() Money {
	return Money{Amount: m.Amount.Round(minorUnits(m.Currency)), Currency: m.Currency}
}

// IsZero indica si el monto es cero.
func (m Money) IsZero() bool { return m.Amount.IsZero() }

// Equal compara monto y moneda.
func (m Money) Equal(o Money) bool {
	return m.Currency == o.Currency && m.Amount.Equal(o.Amount)
}

// AmountString monto con los decimales estándar de la moneda ("300.00").
func (m Money) AmountString() string {
	return m.Amount.StringFixed(minorUnits(m.Currency))
}

func (m Money) String() string {
	return m.AmountString() + " " + m.Currency
}

// minorUnits decimales estándar de la moneda; 2 si no es reconocida.
func minorUnits(code string) int32 {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}
