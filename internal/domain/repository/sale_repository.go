package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Graphi-api/internal/domain/entity"
)

// SaleFilter criterios para seleccionar ventas. Los campos vacíos no filtran.
type SaleFilter struct {
	StoreID   string
	ProductID string
	GroupID   string
	BrandID   string
	Category  string
	From      *time.Time // made_at >= From
	To        *time.Time // made_at <= To
}

// Matches evalúa el filtro sobre una venta con su producto cargado (implementaciones en memoria).
func (f SaleFilter) Matches(s *entity.Sale) bool {
	if f.StoreID != "" && s.StoreID != f.StoreID {
		return false
	}
	if f.ProductID != "" && s.ProductID != f.ProductID {
		return false
	}
	if f.From != nil && s.MadeAt.Before(*f.From) {
		return false
	}
	if f.To != nil && s.MadeAt.After(*f.To) {
		return false
	}
	if f.GroupID == "" && f.BrandID == "" && f.Category == "" {
		return true
	}
	p := s.Product
	if p == nil {
		return false
	}
	if f.GroupID != "" && (p.GroupID == nil || *p.GroupID != f.GroupID) {
		return false
	}
	if f.BrandID != "" && (p.BrandID == nil || *p.BrandID != f.BrandID) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	return true
}

// SaleRepository define el puerto de persistencia del libro de ventas.
// Create y Delete se usan dentro de la transacción de TxRunner.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// GetByID devuelve la venta con su producto cargado, o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	Delete(ctx context.Context, id string) error
	// Stream recorre las ventas del filtro una a una (con producto cargado) sin materializar el conjunto.
	// Si fn devuelve error el recorrido se detiene y el error se propaga. fn corre con la
	// conexión ocupada: no debe volver a consultar el almacenamiento.
	Stream(ctx context.Context, filter SaleFilter, fn func(*entity.Sale) error) error
	Count(ctx context.Context, filter SaleFilter) (int64, error)
	// List devuelve ventas ordenadas por made_at descendente.
	List(ctx context.Context, filter SaleFilter, limit, offset int) ([]*entity.Sale, error)
}
