package repository

import (
	"context"

	"github.com/jhoicas/Graphi-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Store, error)
}
