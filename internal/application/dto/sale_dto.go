package dto

import "time"

// CommitSaleRequest entrada para registrar una venta.
type CommitSaleRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CombineSalesRequest entrada para combinar dos ventas (vista previa, no se guarda).
type CombineSalesRequest struct {
	FirstID  string `json:"first_id" validate:"required"`
	SecondID string `json:"second_id" validate:"required"`
	Subtract bool   `json:"subtract"`
}

// SaleResponse salida de una venta. Revenue usa el precio vigente del producto.
type SaleResponse struct {
	ID          string         `json:"id,omitempty"`
	StoreID     string         `json:"store_id"`
	ProductID   string         `json:"product_id"`
	ProductName string         `json:"product_name,omitempty"`
	Quantity    int            `json:"quantity"`
	Revenue     *MoneyResponse `json:"revenue,omitempty"`
	MadeAt      *time.Time     `json:"made_at,omitempty"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// RevenueResponse ingreso total agregado.
type RevenueResponse struct {
	Revenue MoneyResponse `json:"revenue"`
}

// CountResponse número de ventas.
type CountResponse struct {
	Count int64 `json:"count"`
}
