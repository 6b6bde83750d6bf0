// Package memory implementa los puertos de persistencia en memoria, con transacciones
// serializadas y rollback de las claves escritas. Se usa en tests y en entornos sin PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Graphi-api/internal/application/sales"
	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
	"github.com/jhoicas/Graphi-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository      = (*ProductRepo)(nil)
	_ repository.SaleRepository         = (*SaleRepo)(nil)
	_ repository.StoreRepository        = (*StoreRepo)(nil)
	_ repository.CatalogRepository      = (*CatalogRepo)(nil)
	_ repository.ExchangeRateRepository = (*ExchangeRateRepo)(nil)
	_ sales.TxRunner                    = (*TxRunner)(nil)
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu       sync.RWMutex
	txMu     sync.Mutex // serializa transacciones (equivale al bloqueo de fila)
	products map[string]entity.Product
	sales    map[string]entity.Sale
	stores   map[string]entity.Store
	groups   map[string]entity.ProductGroup
	brands   map[string]entity.ProductBrand
	rates    map[string]entity.ExchangeRate

	// Fail, si no es nil, se consulta antes de cada escritura con el nombre de la operación
	// ("sale.create", "product.update_quantity", ...); un error simula la caída del almacenamiento.
	Fail func(op string) error
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{
		products: make(map[string]entity.Product),
		sales:    make(map[string]entity.Sale),
		stores:   make(map[string]entity.Store),
		groups:   make(map[string]entity.ProductGroup),
		brands:   make(map[string]entity.ProductBrand),
		rates:    make(map[string]entity.ExchangeRate),
	}
}

// failure devuelve el fallo simulado para op, si lo hay. Requiere s.mu tomado.
func (s *Store) failure(op string) error {
	if s.Fail == nil {
		return nil
	}
	return s.Fail(op)
}

// undoLog valores previos de las claves que escribió una transacción.
// Deshacer solo esas claves conserva lo escrito fuera de la transacción mientras corría.
type undoLog struct {
	steps []func(s *Store)
}

// product anota el estado previo del producto id. Requiere s.mu tomado; u nil no anota.
func (u *undoLog) product(s *Store, id string) {
	if u == nil {
		return
	}
	prev, existed := s.products[id]
	u.steps = append(u.steps, func(s *Store) {
		if existed {
			s.products[id] = prev
		} else {
			delete(s.products, id)
		}
	})
}

// sale anota el estado previo de la venta id. Requiere s.mu tomado; u nil no anota.
func (u *undoLog) sale(s *Store, id string) {
	if u == nil {
		return
	}
	prev, existed := s.sales[id]
	u.steps = append(u.steps, func(s *Store) {
		if existed {
			s.sales[id] = prev
		} else {
			delete(s.sales, id)
		}
	})
}

func (s *Store) rollback(u *undoLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(u.steps) - 1; i >= 0; i-- {
		u.steps[i](s)
	}
}

// TxRunner transacciones en memoria: una a la vez, con rollback si fn falla.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacenamiento.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn de forma exclusiva; si devuelve error se deshacen sus escrituras.
func (r *TxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	undo := &undoLog{}
	if err := fn(&SaleRepo{store: r.store, undo: undo}, &ProductRepo{store: r.store, undo: undo}); err != nil {
		r.store.rollback(undo)
		return err
	}
	return nil
}

// ProductRepo productos en memoria.
type ProductRepo struct {
	store *Store
	undo  *undoLog // nil fuera de una transacción
}

// NewProductRepository construye el repositorio.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("product.create"); err != nil {
		return err
	}
	if _, ok := r.store.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	r.undo.product(r.store, product.ID)
	r.store.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetForUpdate igual que GetByID: la exclusión la da TxRunner.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("product.update"); err != nil {
		return err
	}
	current, ok := r.store.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	updated := *product
	updated.Quantity = current.Quantity
	r.undo.product(r.store, product.ID)
	r.store.products[product.ID] = updated
	return nil
}

func (r *ProductRepo) UpdateQuantity(_ context.Context, productID string, quantity int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("product.update_quantity"); err != nil {
		return err
	}
	p, ok := r.store.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if quantity < 0 {
		return domain.ErrConflict
	}
	r.undo.product(r.store, productID)
	p.Quantity = quantity
	r.store.products[productID] = p
	return nil
}

func (r *ProductRepo) ListByStore(_ context.Context, storeID string, limit, offset int) ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.store.products {
		if p.StoreID == storeID {
			p := p
			list = append(list, &p)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return page(list, limit, offset), nil
}

// Delete elimina el producto y sus ventas (cascada).
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("product.delete"); err != nil {
		return err
	}
	if _, ok := r.store.products[id]; !ok {
		return domain.ErrNotFound
	}
	r.undo.product(r.store, id)
	delete(r.store.products, id)
	for sid, s := range r.store.sales {
		if s.ProductID == id {
			r.undo.sale(r.store, sid)
			delete(r.store.sales, sid)
		}
	}
	return nil
}

// SaleRepo libro de ventas en memoria.
type SaleRepo struct {
	store *Store
	undo  *undoLog // nil fuera de una transacción
}

// NewSaleRepository construye el repositorio.
func NewSaleRepository(store *Store) *SaleRepo {
	return &SaleRepo{store: store}
}

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("sale.create"); err != nil {
		return err
	}
	if _, ok := r.store.sales[sale.ID]; ok {
		return domain.ErrDuplicate
	}
	if _, ok := r.store.products[sale.ProductID]; !ok {
		return domain.ErrNotFound
	}
	stored := *sale
	stored.Product = nil
	r.undo.sale(r.store, sale.ID)
	r.store.sales[sale.ID] = stored
	return nil
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	s, ok := r.store.sales[id]
	if !ok {
		return nil, nil
	}
	return r.withProduct(s), nil
}

// Delete devuelve ErrNotFound si la venta no existe.
func (r *SaleRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failure("sale.delete"); err != nil {
		return err
	}
	if _, ok := r.store.sales[id]; !ok {
		return domain.ErrNotFound
	}
	r.undo.sale(r.store, id)
	delete(r.store.sales, id)
	return nil
}

// Stream copia las ventas que cumplen el filtro y llama fn fuera del lock.
func (r *SaleRepo) Stream(ctx context.Context, filter repository.SaleFilter, fn func(*entity.Sale) error) error {
	for _, s := range r.matching(filter) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *SaleRepo) Count(_ context.Context, filter repository.SaleFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

func (r *SaleRepo) List(_ context.Context, filter repository.SaleFilter, limit, offset int) ([]*entity.Sale, error) {
	list := r.matching(filter)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].MadeAt.After(list[j].MadeAt)
	})
	return page(list, limit, offset), nil
}

func (r *SaleRepo) matching(filter repository.SaleFilter) []*entity.Sale {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.Sale
	for _, s := range r.store.sales {
		sale := r.withProduct(s)
		if filter.Matches(sale) {
			out = append(out, sale)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// withProduct copia la venta y le adjunta una copia del producto. Requiere s.mu tomado.
func (r *SaleRepo) withProduct(s entity.Sale) *entity.Sale {
	if p, ok := r.store.products[s.ProductID]; ok {
		s.Product = &p
	}
	return &s
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
