package entity

import "time"

// ProductGroup agrupación libre de productos dentro de una tienda.
type ProductGroup struct {
	ID        string
	StoreID   string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductBrand marca de productos dentro de una tienda.
type ProductBrand struct {
	ID        string
	StoreID   string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
