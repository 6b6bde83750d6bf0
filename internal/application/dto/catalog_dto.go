package dto

import "time"

// CreateCatalogItemRequest entrada para crear un grupo o una marca.
type CreateCatalogItemRequest struct {
	Name string `json:"name" validate:"required,min=1,max=150"`
}

// CatalogItemResponse salida de un grupo o una marca.
type CatalogItemResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CatalogListResponse lista de grupos o marcas.
type CatalogListResponse struct {
	Items []CatalogItemResponse `json:"items"`
}
