package repository

import (
	"context"

	"github.com/jhoicas/Graphi-api/internal/domain/entity"
)

// CatalogRepository persistencia de grupos y marcas de productos por tienda.
type CatalogRepository interface {
	CreateGroup(ctx context.Context, group *entity.ProductGroup) error
	GetGroup(ctx context.Context, id string) (*entity.ProductGroup, error)
	ListGroups(ctx context.Context, storeID string) ([]*entity.ProductGroup, error)
	CreateBrand(ctx context.Context, brand *entity.ProductBrand) error
	GetBrand(ctx context.Context, id string) (*entity.ProductBrand, error)
	ListBrands(ctx context.Context, storeID string) ([]*entity.ProductBrand, error)
}
