package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Graphi-api/internal/application/dto"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
)

// Locals keys de la tienda resuelta por RequireStore.
const (
	LocalStoreID       = "store_id"
	LocalStoreCurrency = "store_currency"
)

// storeGetter es el contrato mínimo que necesita el middleware para resolver la tienda.
// Lo implementa repository.StoreRepository.
type storeGetter interface {
	GetByID(ctx context.Context, id string) (*entity.Store, error)
}

// RequireStore resuelve :store_id y deja la tienda en c.Locals.
//
// Comportamiento:
//   - 404 Not Found → id con formato inválido o tienda inexistente.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequireStore(stores storeGetter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("store_id")
		if _, err := uuid.Parse(storeID); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STORE_NOT_FOUND", Message: "tienda no encontrada"})
		}
		store, err := stores.GetByID(c.UserContext(), storeID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "STORE_CHECK_FAILED",
				Message: "no se pudo verificar la tienda, intente más tarde",
			})
		}
		if store == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "STORE_NOT_FOUND", Message: "tienda no encontrada"})
		}
		c.Locals(LocalStoreID, store.ID)
		c.Locals(LocalStoreCurrency, store.Currency)
		return c.Next()
	}
}

// GetStoreID devuelve el StoreID del contexto (después de RequireStore).
func GetStoreID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalStoreID).(string)
	return s
}

// GetStoreCurrency moneda de reportes de la tienda (después de RequireStore).
func GetStoreCurrency(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalStoreCurrency).(string)
	return s
}
