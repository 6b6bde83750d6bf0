package repository

import (
	"context"

	"github.com/jhoicas/Graphi-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity persiste solo el stock disponible (motor de ventas).
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
