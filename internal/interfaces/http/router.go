package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Graphi-api/internal/application/currency"
	"github.com/jhoicas/Graphi-api/internal/application/sales"
	"github.com/jhoicas/Graphi-api/internal/application/usecase"
	"github.com/jhoicas/Graphi-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreUC   *usecase.StoreUseCase
	CatalogUC *usecase.CatalogUseCase
	ProductUC *usecase.ProductUseCase
	SaleUC    *sales.SaleUseCase
	RatesUC   *currency.RefreshUseCase
	Stores    repository.StoreRepository
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Stores
	storeHandler := NewStoreHandler(deps.StoreUC)
	api.Post("/stores", storeHandler.Create)
	api.Get("/stores", storeHandler.List)

	// Todo lo que cuelga de una tienda pasa por RequireStore
	store := api.Group("/stores/:store_id", RequireStore(deps.Stores))
	store.Get("/", storeHandler.GetByID)

	// Grupos y marcas
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	store.Post("/groups", catalogHandler.CreateGroup)
	store.Get("/groups", catalogHandler.ListGroups)
	store.Post("/brands", catalogHandler.CreateBrand)
	store.Get("/brands", catalogHandler.ListBrands)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	store.Post("/products", productHandler.Create)
	store.Get("/products", productHandler.List)
	store.Get("/products/:id", productHandler.GetByID)
	store.Put("/products/:id", productHandler.Update)
	store.Delete("/products/:id", productHandler.Delete)

	// Sales (las rutas fijas antes de /:id)
	saleHandler := NewSaleHandler(deps.SaleUC)
	store.Post("/sales", saleHandler.Commit)
	store.Get("/sales", saleHandler.List)
	store.Get("/sales/revenue", saleHandler.Revenue)
	store.Get("/sales/count", saleHandler.Count)
	store.Post("/sales/combine", saleHandler.Combine)
	store.Get("/sales/:id", saleHandler.GetByID)
	store.Delete("/sales/:id", saleHandler.Reverse)

	// Tasas de cambio
	ratesHandler := NewExchangeRateHandler(deps.RatesUC)
	api.Post("/exchange-rates/refresh", ratesHandler.Refresh)
	api.Put("/exchange-rates/:currency", ratesHandler.Set)
}
