// Package exchange cliente HTTP del proveedor externo de tasas de cambio.
package exchange

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Graphi-api/internal/application/currency"
	"github.com/jhoicas/Graphi-api/pkg/config"
)

var _ currency.RateProvider = (*Provider)(nil)

// Provider implementación resty de currency.RateProvider.
type Provider struct {
	httpClient *resty.Client
}

// NewProvider construye el cliente a partir de la configuración de tasas.
func NewProvider(cfg config.RatesConfig) *Provider {
	client := resty.New()
	client.
		SetBaseURL(strings.TrimSuffix(cfg.ProviderURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	return &Provider{httpClient: client}
}

// latestResponse cuerpo de GET /latest.
type latestResponse struct {
	Base      string                     `json:"base"`
	Timestamp int64                      `json:"timestamp"`
	Rates     map[string]decimal.Decimal `json:"rates"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Latest descarga las tasas vigentes relativas a base.
func (p *Provider) Latest(ctx context.Context, base string) (map[string]decimal.Decimal, time.Time, error) {
	result := new(latestResponse)
	apiErr := new(apiError)

	resp, err := p.httpClient.R().
		SetContext(ctx).
		SetQueryParam("base", base).
		SetResult(result).
		SetError(apiErr).
		Get("/latest")
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("fetch exchange rates: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error
		}
		return nil, time.Time{}, fmt.Errorf("rates api error: status=%d, message=%s", resp.StatusCode(), msg)
	}
	if result.Base != "" && !strings.EqualFold(result.Base, base) {
		return nil, time.Time{}, fmt.Errorf("rates api error: base %s, se esperaba %s", result.Base, base)
	}

	var asOf time.Time
	if result.Timestamp > 0 {
		asOf = time.Unix(result.Timestamp, 0).UTC()
	}
	return result.Rates, asOf, nil
}
