package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Graphi-api/internal/application/dto"
	"github.com/jhoicas/Graphi-api/internal/application/sales"
	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
	"github.com/jhoicas/Graphi-api/internal/domain/money"
	"github.com/jhoicas/Graphi-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo cambia vía ventas o reposición (Update.Quantity).
type ProductUseCase struct {
	repo            repository.ProductRepository
	catalog         repository.CatalogRepository
	stores          repository.StoreRepository
	txRunner        sales.TxRunner
	defaultCurrency string
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	catalog repository.CatalogRepository,
	stores repository.StoreRepository,
	txRunner sales.TxRunner,
	defaultCurrency string,
) *ProductUseCase {
	if defaultCurrency == "" {
		defaultCurrency = money.DefaultCurrency
	}
	return &ProductUseCase{
		repo:            repo,
		catalog:         catalog,
		stores:          stores,
		txRunner:        txRunner,
		defaultCurrency: defaultCurrency,
	}
}

// Create crea un nuevo producto en la tienda.
func (uc *ProductUseCase) Create(ctx context.Context, storeID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Category == "" {
		in.Category = entity.CategoryOthers
	}
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.PriceCurrency == "" {
		in.PriceCurrency = uc.defaultCurrency
	}
	price, err := newPrice(in.Price, in.PriceCurrency)
	if err != nil {
		return nil, err
	}
	if err := validWeight(in.Weight); err != nil {
		return nil, err
	}
	if err := uc.checkCatalog(ctx, storeID, in.GroupID, in.BrandID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		StoreID:     storeID,
		GroupID:     emptyToNil(in.GroupID),
		BrandID:     emptyToNil(in.BrandID),
		Name:        name,
		Description: in.Description,
		Price:       price,
		Quantity:    in.Quantity,
		Color:       in.Color,
		Size:        in.Size,
		Weight:      in.Weight,
		Category:    in.Category,
		AddedAt:     now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto de la tienda. ErrNotFound si no existe o es de otra tienda.
func (uc *ProductUseCase) GetByID(ctx context.Context, storeID, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Si in.Quantity viene, fija el stock bajo bloqueo de fila.
func (uc *ProductUseCase) Update(ctx context.Context, storeID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil || in.PriceCurrency != nil {
		amount, cur := product.Price.Amount, product.Price.Currency
		if in.Price != nil {
			amount = *in.Price
		}
		if in.PriceCurrency != nil {
			cur = *in.PriceCurrency
		}
		price, err := newPrice(amount, cur)
		if err != nil {
			return nil, err
		}
		product.Price = price
	}
	if in.GroupID != nil || in.BrandID != nil {
		if err := uc.checkCatalog(ctx, storeID, in.GroupID, in.BrandID); err != nil {
			return nil, err
		}
		if in.GroupID != nil {
			product.GroupID = emptyToNil(in.GroupID)
		}
		if in.BrandID != nil {
			product.BrandID = emptyToNil(in.BrandID)
		}
	}
	if in.Color != nil {
		product.Color = *in.Color
	}
	if in.Size != nil {
		product.Size = *in.Size
	}
	if in.Weight != nil {
		if err := validWeight(in.Weight); err != nil {
			return nil, err
		}
		product.Weight = in.Weight
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		product.Category = *in.Category
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product.UpdatedAt = time.Now()

	err = uc.txRunner.Run(ctx, func(_ repository.SaleRepository, productRepo repository.ProductRepository) error {
		locked, err := productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		product.Quantity = locked.Quantity
		if in.Quantity != nil {
			if err := productRepo.UpdateQuantity(ctx, id, *in.Quantity); err != nil {
				return err
			}
			product.Quantity = *in.Quantity
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos de la tienda ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context, storeID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByStore(ctx, storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto de la tienda; sus ventas se eliminan con él.
func (uc *ProductUseCase) Delete(ctx context.Context, storeID, id string) error {
	if _, err := uc.get(ctx, storeID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) get(ctx context.Context, storeID, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// checkCatalog grupo y marca (si vienen) deben existir y ser de la misma tienda.
func (uc *ProductUseCase) checkCatalog(ctx context.Context, storeID string, groupID, brandID *string) error {
	if groupID != nil && *groupID != "" {
		g, err := uc.catalog.GetGroup(ctx, *groupID)
		if err != nil {
			return err
		}
		if g == nil || g.StoreID != storeID {
			return domain.ErrInvalidInput
		}
	}
	if brandID != nil && *brandID != "" {
		b, err := uc.catalog.GetBrand(ctx, *brandID)
		if err != nil {
			return err
		}
		if b == nil || b.StoreID != storeID {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func newPrice(amount decimal.Decimal, cur string) (money.Money, error) {
	if amount.IsNegative() {
		return money.Money{}, domain.ErrInvalidInput
	}
	return money.New(amount, cur)
}

func validWeight(w *decimal.Decimal) error {
	if w != nil && w.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		StoreID:       p.StoreID,
		GroupID:       p.GroupID,
		BrandID:       p.BrandID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         dto.NewMoneyResponse(p.Price),
		Quantity:      p.Quantity,
		Color:         p.Color,
		Size:          p.Size,
		Weight:        p.Weight,
		Category:      p.Category,
		CategoryLabel: entity.CategoryLabel(p.Category),
		AddedAt:       p.AddedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
