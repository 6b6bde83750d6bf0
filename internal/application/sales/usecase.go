package sales

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
	"github.com/jhoicas/Graphi-api/internal/domain/money"
	"github.com/jhoicas/Graphi-api/internal/domain/repository"
	"github.com/jhoicas/Graphi-api/internal/domain/sales"
	"github.com/jhoicas/Graphi-api/pkg/logger"
)

// SaleUseCase motor de ventas: registra y revierte ventas junto con el ajuste de inventario
// en una sola transacción, y agrega ingresos en varias monedas.
type SaleUseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	converter   Converter
	log         *logger.Logger
	now         func() time.Time
}

// NewSaleUseCase construye el caso de uso. log puede ser nil.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	converter Converter,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:    txRunner,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		converter:   converter,
		log:         logger.OrNop(log).Named("sales"),
		now:         time.Now,
	}
}

// Commit registra una venta y descuenta el inventario del producto.
// Las precondiciones se validan antes de escribir; luego, dentro de la transacción, se bloquea
// la fila del producto (SELECT FOR UPDATE), se revalida contra el stock bloqueado, se inserta la
// venta y por último se descuenta el stock. Cualquier fallo hace Rollback de ambas escrituras.
func (uc *SaleUseCase) Commit(ctx context.Context, storeID, productID string, quantity int) (*entity.Sale, error) {
	if err := sales.ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	if storeID == "" || productID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Validación temprana sin bloqueo: evita abrir transacción para errores evidentes.
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := sales.CheckCommit(product, storeID, quantity); err != nil {
		return nil, err
	}

	now := uc.now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		ProductID: productID,
		Quantity:  quantity,
		MadeAt:    now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) error {
		locked, err := productRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		// El stock pudo cambiar entre la lectura inicial y el bloqueo.
		if err := sales.CheckCommit(locked, storeID, quantity); err != nil {
			return err
		}
		// Primero la venta, luego el inventario (misma transacción).
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		locked.Quantity -= quantity
		locked.UpdatedAt = now
		if err := productRepo.UpdateQuantity(ctx, locked.ID, locked.Quantity); err != nil {
			return err
		}
		sale.Product = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("store_id", storeID).
		Str("product_id", productID).
		Int("quantity", quantity).
		Int("on_hand", sale.Product.Quantity).
		Msg("venta registrada")
	return sale, nil
}

// Reverse elimina una venta y devuelve su cantidad al inventario del producto, en una transacción.
// storeID vacío omite la verificación de tienda.
func (uc *SaleUseCase) Reverse(ctx context.Context, storeID, saleID string) error {
	if saleID == "" {
		return domain.ErrInvalidInput
	}
	var restored *entity.Sale
	err := uc.txRunner.Run(ctx, func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) error {
		sale, err := saleRepo.GetByID(ctx, saleID)
		if err != nil {
			return err
		}
		if sale == nil || (storeID != "" && sale.StoreID != storeID) {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(ctx, sale.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		product.Quantity += sale.Quantity
		if err := productRepo.UpdateQuantity(ctx, product.ID, product.Quantity); err != nil {
			return err
		}
		// Delete devuelve ErrNotFound si otra transacción ya la eliminó: se revierte el incremento.
		if err := saleRepo.Delete(ctx, sale.ID); err != nil {
			return err
		}
		sale.Product = product
		restored = sale
		return nil
	})
	if err != nil {
		return err
	}

	uc.log.Info().
		Str("sale_id", restored.ID).
		Str("product_id", restored.ProductID).
		Int("quantity", restored.Quantity).
		Int("on_hand", restored.Product.Quantity).
		Msg("venta revertida")
	return nil
}

// TotalRevenue suma el ingreso de las ventas del filtro convertido a currencyCode.
// Recorre las ventas sin materializarlas acumulando un subtotal por moneda; las tasas se
// consultan después de cerrar el cursor, una vez por moneda. Si alguna moneda no tiene tasa,
// falla toda la agregación.
func (uc *SaleUseCase) TotalRevenue(ctx context.Context, currencyCode string, filter repository.SaleFilter) (money.Money, error) {
	target, err := money.ParseCurrency(currencyCode)
	if err != nil {
		return money.Money{}, err
	}

	subtotals := make(map[string]money.Money)
	err = uc.saleRepo.Stream(ctx, filter, func(s *entity.Sale) error {
		revenue, err := s.Revenue()
		if err != nil {
			return err
		}
		sub, ok := subtotals[revenue.Currency]
		if !ok {
			sub = money.Zero(revenue.Currency)
		}
		if sub, err = sub.Add(revenue); err != nil {
			return err
		}
		subtotals[revenue.Currency] = sub
		return nil
	})
	if err != nil {
		return money.Money{}, err
	}

	// Con el cursor cerrado: la búsqueda de tasas puede necesitar otra conexión.
	currencies := make([]string, 0, len(subtotals))
	for cur := range subtotals {
		currencies = append(currencies, cur)
	}
	sort.Strings(currencies)

	total := money.Zero(target)
	for _, cur := range currencies {
		converted, err := uc.converter.Convert(ctx, subtotals[cur], target)
		if err != nil {
			return money.Money{}, err
		}
		if total, err = total.Add(converted); err != nil {
			return money.Money{}, err
		}
	}
	return total, nil
}

// Count número de ventas del filtro.
func (uc *SaleUseCase) Count(ctx context.Context, filter repository.SaleFilter) (int64, error) {
	return uc.saleRepo.Count(ctx, filter)
}

// Get obtiene una venta de la tienda con su producto cargado.
func (uc *SaleUseCase) Get(ctx context.Context, storeID, saleID string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil || (storeID != "" && sale.StoreID != storeID) {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

// List ventas del filtro, más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context, filter repository.SaleFilter, limit, offset int) ([]*entity.Sale, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.saleRepo.List(ctx, filter, limit, offset)
}

// Combine carga dos ventas de la tienda y devuelve su combinación (suma o resta) sin persistirla.
func (uc *SaleUseCase) Combine(ctx context.Context, storeID, firstID, secondID string, subtract bool) (*entity.Sale, error) {
	first, err := uc.Get(ctx, storeID, firstID)
	if err != nil {
		return nil, err
	}
	second, err := uc.Get(ctx, storeID, secondID)
	if err != nil {
		return nil, err
	}
	if subtract {
		return first.CombineSubtract(second)
	}
	return first.Combine(second)
}
