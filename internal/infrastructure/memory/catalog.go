package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
)

// StoreRepo tiendas en memoria.
type StoreRepo struct {
	store *Store
}

func NewStoreRepository(store *Store) *StoreRepo {
	return &StoreRepo{store: store}
}

func (r *StoreRepo) Create(_ context.Context, st *entity.Store) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.stores[st.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.stores[st.ID] = *st
	return nil
}

func (r *StoreRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	st, ok := r.store.stores[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (r *StoreRepo) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]*entity.Store, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var list []*entity.Store
	for _, st := range r.store.stores {
		if st.OwnerID == ownerID {
			st := st
			list = append(list, &st)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return page(list, limit, offset), nil
}

// CatalogRepo grupos y marcas en memoria.
type CatalogRepo struct {
	store *Store
}

func NewCatalogRepository(store *Store) *CatalogRepo {
	return &CatalogRepo{store: store}
}

func (r *CatalogRepo) CreateGroup(_ context.Context, g *entity.ProductGroup) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.groups[g.ID] = *g
	return nil
}

func (r *CatalogRepo) GetGroup(_ context.Context, id string) (*entity.ProductGroup, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	g, ok := r.store.groups[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *CatalogRepo) ListGroups(_ context.Context, storeID string) ([]*entity.ProductGroup, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var list []*entity.ProductGroup
	for _, g := range r.store.groups {
		if g.StoreID == storeID {
			g := g
			list = append(list, &g)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *CatalogRepo) CreateBrand(_ context.Context, b *entity.ProductBrand) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.brands[b.ID] = *b
	return nil
}

func (r *CatalogRepo) GetBrand(_ context.Context, id string) (*entity.ProductBrand, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	b, ok := r.store.brands[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *CatalogRepo) ListBrands(_ context.Context, storeID string) ([]*entity.ProductBrand, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var list []*entity.ProductBrand
	for _, b := range r.store.brands {
		if b.StoreID == storeID {
			b := b
			list = append(list, &b)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// ExchangeRateRepo tasas de cambio en memoria.
type ExchangeRateRepo struct {
	store *Store
}

func NewExchangeRateRepository(store *Store) *ExchangeRateRepo {
	return &ExchangeRateRepo{store: store}
}

func (r *ExchangeRateRepo) Get(_ context.Context, base, currency string) (*entity.ExchangeRate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rate, ok := r.store.rates[base+":"+currency]
	if !ok {
		return nil, nil
	}
	return &rate, nil
}

func (r *ExchangeRateRepo) UpsertMany(_ context.Context, rates []entity.ExchangeRate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, rate := range rates {
		r.store.rates[rate.Base+":"+rate.Currency] = rate
	}
	return nil
}
