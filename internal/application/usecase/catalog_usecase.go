package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Graphi-api/internal/application/dto"
	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
	"github.com/jhoicas/Graphi-api/internal/domain/repository"
)

// CatalogUseCase grupos y marcas de productos de una tienda.
type CatalogUseCase struct {
	repo   repository.CatalogRepository
	stores repository.StoreRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository, stores repository.StoreRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, stores: stores}
}

// CreateGroup crea un grupo en la tienda.
func (uc *CatalogUseCase) CreateGroup(ctx context.Context, storeID string, in dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	name, err := uc.validate(ctx, storeID, in.Name)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	g := &entity.ProductGroup{ID: uuid.New().String(), StoreID: storeID, Name: name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.CreateGroup(ctx, g); err != nil {
		return nil, err
	}
	return &dto.CatalogItemResponse{ID: g.ID, StoreID: g.StoreID, Name: g.Name, CreatedAt: g.CreatedAt, UpdatedAt: g.UpdatedAt}, nil
}

// ListGroups grupos de la tienda ordenados por nombre.
func (uc *CatalogUseCase) ListGroups(ctx context.Context, storeID string) (*dto.CatalogListResponse, error) {
	list, err := uc.repo.ListGroups(ctx, storeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemResponse, 0, len(list))
	for _, g := range list {
		items = append(items, dto.CatalogItemResponse{ID: g.ID, StoreID: g.StoreID, Name: g.Name, CreatedAt: g.CreatedAt, UpdatedAt: g.UpdatedAt})
	}
	return &dto.CatalogListResponse{Items: items}, nil
}

// CreateBrand crea una marca en la tienda.
func (uc *CatalogUseCase) CreateBrand(ctx context.Context, storeID string, in dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	name, err := uc.validate(ctx, storeID, in.Name)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	b := &entity.ProductBrand{ID: uuid.New().String(), StoreID: storeID, Name: name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.CreateBrand(ctx, b); err != nil {
		return nil, err
	}
	return &dto.CatalogItemResponse{ID: b.ID, StoreID: b.StoreID, Name: b.Name, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}, nil
}

// ListBrands marcas de la tienda ordenadas por nombre.
func (uc *CatalogUseCase) ListBrands(ctx context.Context, storeID string) (*dto.CatalogListResponse, error) {
	list, err := uc.repo.ListBrands(ctx, storeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.CatalogItemResponse{ID: b.ID, StoreID: b.StoreID, Name: b.Name, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt})
	}
	return &dto.CatalogListResponse{Items: items}, nil
}

func (uc *CatalogUseCase) validate(ctx context.Context, storeID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrInvalidInput
	}
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return "", err
	}
	if store == nil {
		return "", domain.ErrNotFound
	}
	return name, nil
}
