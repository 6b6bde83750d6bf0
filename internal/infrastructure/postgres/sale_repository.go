package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Graphi-api/internal/domain"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
	"github.com/jhoicas/Graphi-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// saleSelect ventas con su producto (JOIN) para calcular el ingreso con el precio vigente.
const saleSelect = `
	SELECT s.id, s.store_id, s.product_id, s.quantity, s.made_at, s.updated_at,
	       p.id, p.store_id, p.group_id, p.brand_id, p.name, p.description, p.price, p.price_currency,
	       p.quantity, p.color, p.size, p.weight, p.category, p.added_at, p.updated_at
	FROM sales s
	JOIN products p ON p.id = s.product_id`

// SaleRepo libro de ventas sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var p entity.Product
	targets := append([]any{&s.ID, &s.StoreID, &s.ProductID, &s.Quantity, &s.MadeAt, &s.UpdatedAt}, productScanTargets(&p)...)
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	s.Product = &p
	return &s, nil
}

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, store_id, product_id, quantity, made_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.StoreID, sale.ProductID, sale.Quantity, sale.MadeAt, sale.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		case isCheckViolation(err):
			return domain.ErrInvalidQuantity
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con su producto (nil si no existe).
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := scanSale(r.q.QueryRow(ctx, saleSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// Delete elimina la venta; ErrNotFound si no existía (p. ej. revertida por otra transacción).
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Stream recorre las filas a medida que llegan del servidor; no acumula el resultado.
func (r *SaleRepo) Stream(ctx context.Context, filter repository.SaleFilter, fn func(*entity.Sale) error) error {
	where, args := buildSaleWhere(filter)
	rows, err := r.q.Query(ctx, saleSelect+where, args...)
	if err != nil {
		return fmt.Errorf("stream sales: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return fmt.Errorf("scan sale: %w", err)
		}
		if err := fn(sale); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Count número de ventas del filtro.
func (r *SaleRepo) Count(ctx context.Context, filter repository.SaleFilter) (int64, error) {
	where, args := buildSaleWhere(filter)
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sales s JOIN products p ON p.id = s.product_id`+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

// List ventas del filtro ordenadas por made_at descendente.
func (r *SaleRepo) List(ctx context.Context, filter repository.SaleFilter, limit, offset int) ([]*entity.Sale, error) {
	where, args := buildSaleWhere(filter)
	query := saleSelect + where + fmt.Sprintf(" ORDER BY s.made_at DESC, s.id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, sale)
	}
	return list, rows.Err()
}

// buildSaleWhere traduce el filtro a " WHERE ..." con parámetros posicionales ($1, $2, ...).
// Devuelve "" si el filtro está vacío.
func buildSaleWhere(f repository.SaleFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.StoreID != "" {
		add("s.store_id = $%d", f.StoreID)
	}
	if f.ProductID != "" {
		add("s.product_id = $%d", f.ProductID)
	}
	if f.GroupID != "" {
		add("p.group_id = $%d", f.GroupID)
	}
	if f.BrandID != "" {
		add("p.brand_id = $%d", f.BrandID)
	}
	if f.Category != "" {
		add("p.category = $%d", f.Category)
	}
	if f.From != nil {
		add("s.made_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("s.made_at <= $%d", *f.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
