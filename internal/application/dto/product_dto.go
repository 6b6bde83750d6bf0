package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required,min=1,max=150"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	PriceCurrency string           `json:"price_currency"` // vacío = moneda por defecto
	Quantity      int              `json:"quantity"`
	GroupID       *string          `json:"group_id"`
	BrandID       *string          `json:"brand_id"`
	Color         string           `json:"color"`
	Size          string           `json:"size"`
	Weight        *decimal.Decimal `json:"weight"`
	Category      string           `json:"category"`
}

// UpdateProductRequest entrada para actualizar un producto. Quantity fija el stock (reposición).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=150"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	PriceCurrency *string          `json:"price_currency"`
	Quantity      *int             `json:"quantity"`
	GroupID       *string          `json:"group_id"`
	BrandID       *string          `json:"brand_id"`
	Color         *string          `json:"color"`
	Size          *string          `json:"size"`
	Weight        *decimal.Decimal `json:"weight"`
	Category      *string          `json:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string           `json:"id"`
	StoreID       string           `json:"store_id"`
	GroupID       *string          `json:"group_id,omitempty"`
	BrandID       *string          `json:"brand_id,omitempty"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         MoneyResponse    `json:"price"`
	Quantity      int              `json:"quantity"`
	Color         string           `json:"color,omitempty"`
	Size          string           `json:"size,omitempty"`
	Weight        *decimal.Decimal `json:"weight,omitempty"`
	Category      string           `json:"category"`
	CategoryLabel string           `json:"category_label"`
	AddedAt       time.Time        `json:"added_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
