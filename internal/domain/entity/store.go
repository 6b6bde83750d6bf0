package entity

import "time"

// Store representa una tienda (tenant) dueña de productos y ventas.
type Store struct {
	ID        string
	OwnerID   string
	Name      string
	Currency  string // moneda preferida para reportes
	CreatedAt time.Time
	UpdatedAt time.Time
}
