package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Graphi-api/internal/application/dto"
	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
	"github.com/jhoicas/Graphi-api/internal/domain/money"
	"github.com/jhoicas/Graphi-api/internal/domain/repository"
)

// StoreUseCase casos de uso para tiendas (tenants).
type StoreUseCase struct {
	repo            repository.StoreRepository
	defaultCurrency string
}

// NewStoreUseCase construye el caso de uso. defaultCurrency se usa si la tienda no indica moneda.
func NewStoreUseCase(repo repository.StoreRepository, defaultCurrency string) *StoreUseCase {
	if defaultCurrency == "" {
		defaultCurrency = money.DefaultCurrency
	}
	return &StoreUseCase{repo: repo, defaultCurrency: defaultCurrency}
}

// Create crea una nueva tienda.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	cur := uc.defaultCurrency
	if in.Currency != "" {
		parsed, err := money.ParseCurrency(in.Currency)
		if err != nil {
			return nil, err
		}
		cur = parsed
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		OwnerID:   in.OwnerID,
		Name:      name,
		Currency:  cur,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda por ID. ErrNotFound si no existe.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return toStoreResponse(store), nil
}

// List lista tiendas del dueño con paginación.
func (uc *StoreUseCase) List(ctx context.Context, ownerID string, limit, offset int) (*dto.StoreListResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return &dto.StoreListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		Name:      s.Name,
		Currency:  s.Currency,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
