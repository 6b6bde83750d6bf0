package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
	"github.com/jhoicas/Graphi-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo grupos y marcas de productos sobre PostgreSQL.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// CreateGroup persiste un grupo de productos.
func (r *CatalogRepo) CreateGroup(ctx context.Context, g *entity.ProductGroup) error {
	query := `
		INSERT INTO product_groups (id, store_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, g.ID, g.StoreID, g.Name, g.CreatedAt, g.UpdatedAt)
	return catalogInsertError("product group", err)
}

// GetGroup obtiene un grupo por ID (nil si no existe).
func (r *CatalogRepo) GetGroup(ctx context.Context, id string) (*entity.ProductGroup, error) {
	var g entity.ProductGroup
	err := r.q.QueryRow(ctx,
		`SELECT id, store_id, name, created_at, updated_at FROM product_groups WHERE id = $1`, id,
	).Scan(&g.ID, &g.StoreID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product group: %w", err)
	}
	return &g, nil
}

// ListGroups grupos de la tienda ordenados por nombre.
func (r *CatalogRepo) ListGroups(ctx context.Context, storeID string) ([]*entity.ProductGroup, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, store_id, name, created_at, updated_at FROM product_groups WHERE store_id = $1 ORDER BY name, id`,
		storeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list product groups: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductGroup
	for rows.Next() {
		var g entity.ProductGroup
		if err := rows.Scan(&g.ID, &g.StoreID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// CreateBrand persiste una marca.
func (r *CatalogRepo) CreateBrand(ctx context.Context, b *entity.ProductBrand) error {
	query := `
		INSERT INTO product_brands (id, store_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, b.ID, b.StoreID, b.Name, b.CreatedAt, b.UpdatedAt)
	return catalogInsertError("product brand", err)
}

// GetBrand obtiene una marca por ID (nil si no existe).
func (r *CatalogRepo) GetBrand(ctx context.Context, id string) (*entity.ProductBrand, error) {
	var b entity.ProductBrand
	err := r.q.QueryRow(ctx,
		`SELECT id, store_id, name, created_at, updated_at FROM product_brands WHERE id = $1`, id,
	).Scan(&b.ID, &b.StoreID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product brand: %w", err)
	}
	return &b, nil
}

// ListBrands marcas de la tienda ordenadas por nombre.
func (r *CatalogRepo) ListBrands(ctx context.Context, storeID string) ([]*entity.ProductBrand, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, store_id, name, created_at, updated_at FROM product_brands WHERE store_id = $1 ORDER BY name, id`,
		storeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list product brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductBrand
	for rows.Next() {
		var b entity.ProductBrand
		if err := rows.Scan(&b.ID, &b.StoreID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func catalogInsertError(what string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return domain.ErrNotFound
	}
	return fmt.Errorf("insert %s: %w", what, err)
}
