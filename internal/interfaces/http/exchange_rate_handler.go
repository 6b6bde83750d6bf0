package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Graphi-api/internal/application/currency"
	"github.com/jhoicas/Graphi-api/internal/application/dto"
)

// ExchangeRateHandler carga manual y refresco de tasas de cambio.
type ExchangeRateHandler struct {
	uc *currency.RefreshUseCase
}

// NewExchangeRateHandler construye el handler.
func NewExchangeRateHandler(uc *currency.RefreshUseCase) *ExchangeRateHandler {
	return &ExchangeRateHandler{uc: uc}
}

// Set godoc
// @Summary      Fijar tasa de cambio
// @Description  Unidades de currency por 1 unidad de la moneda base.
// @Tags         exchange-rates
// @Accept       json
// @Produce      json
// @Param        currency  path  string                      true  "Moneda (ISO-4217)"
// @Param        body      body  dto.SetExchangeRateRequest  true  "Tasa"
// @Success      200  {object}  dto.ExchangeRateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/exchange-rates/{currency} [put]
func (h *ExchangeRateHandler) Set(c *fiber.Ctx) error {
	var in dto.SetExchangeRateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	rate, err := h.uc.SetRate(c.UserContext(), c.Params("currency"), in.Rate)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ExchangeRateResponse{
		Base:      rate.Base,
		Currency:  rate.Currency,
		Rate:      rate.Rate,
		UpdatedAt: rate.UpdatedAt,
	})
}

// Refresh godoc
// @Summary      Refrescar tasas desde el proveedor
// @Tags         exchange-rates
// @Produce      json
// @Success      200  {object}  dto.RefreshRatesResponse
// @Failure      409  {object}  dto.ErrorResponse  "Proveedor no configurado"
// @Router       /api/exchange-rates/refresh [post]
func (h *ExchangeRateHandler) Refresh(c *fiber.Ctx) error {
	n, err := h.uc.Refresh(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.RefreshRatesResponse{Updated: n})
}
