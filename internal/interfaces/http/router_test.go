package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Graphi-api/internal/application/currency"
	"github.com/jhoicas/Graphi-api/internal/application/dto"
	"github.com/jhoicas/Graphi-api/internal/application/sales"
	"github.com/jhoicas/Graphi-api/internal/application/usecase"
	"github.com/jhoicas/Graphi-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Graphi-api/internal/interfaces/http"
)

// buildTestApp arma la API completa sobre el almacenamiento en memoria.
func buildTestApp() *fiber.App {
	st := memory.NewStore()
	storeRepo := memory.NewStoreRepository(st)
	catalogRepo := memory.NewCatalogRepository(st)
	productRepo := memory.NewProductRepository(st)
	saleRepo := memory.NewSaleRepository(st)
	rateRepo := memory.NewExchangeRateRepository(st)
	txRunner := memory.NewTxRunner(st)

	conv := currency.NewConverter("USD", rateRepo, nil, nil)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		StoreUC:   usecase.NewStoreUseCase(storeRepo, "NGN"),
		CatalogUC: usecase.NewCatalogUseCase(catalogRepo, storeRepo),
		ProductUC: usecase.NewProductUseCase(productRepo, catalogRepo, storeRepo, txRunner, "NGN"),
		SaleUC:    sales.NewSaleUseCase(txRunner, saleRepo, productRepo, conv, nil),
		RatesUC:   currency.NewRefreshUseCase("USD", nil, rateRepo, nil, nil),
		Stores:    storeRepo,
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any, out any) int {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		if len(raw) > 0 {
			require.NoError(t, json.Unmarshal(raw, out), string(raw))
		}
	}
	return resp.StatusCode
}

func createStore(t *testing.T, app *fiber.App) string {
	t.Helper()
	var store dto.StoreResponse
	status := do(t, app, http.MethodPost, "/api/stores", map[string]any{"owner_id": "o-1", "name": "Main"}, &store)
	require.Equal(t, http.StatusCreated, status)
	return store.ID
}

func createProduct(t *testing.T, app *fiber.App, storeID string, body map[string]any) dto.ProductResponse {
	t.Helper()
	var p dto.ProductResponse
	status := do(t, app, http.MethodPost, "/api/stores/"+storeID+"/products", body, &p)
	require.Equal(t, http.StatusCreated, status)
	return p
}

func TestSalesFlow_Widget(t *testing.T) {
	app := buildTestApp()
	storeID := createStore(t, app)
	widget := createProduct(t, app, storeID, map[string]any{"name": "Widget", "price": "10.00", "quantity": 100})
	base := "/api/stores/" + storeID

	var sale dto.SaleResponse
	status := do(t, app, http.MethodPost, base+"/sales", map[string]any{"product_id": widget.ID, "quantity": 30}, &sale)
	require.Equal(t, http.StatusCreated, status)
	require.NotNil(t, sale.Revenue)
	assert.Equal(t, "300.00", sale.Revenue.Amount)
	assert.Equal(t, "NGN", sale.Revenue.Currency)

	var product dto.ProductResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, base+"/products/"+widget.ID, nil, &product))
	assert.Equal(t, 70, product.Quantity)

	var errResp dto.ErrorResponse
	status = do(t, app, http.MethodPost, base+"/sales", map[string]any{"product_id": widget.ID, "quantity": 80}, &errResp)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_INVENTORY", errResp.Code)
	assert.EqualValues(t, 70, errResp.Details["available"])

	var revenue dto.RevenueResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, base+"/sales/revenue", nil, &revenue))
	assert.Equal(t, "300.00", revenue.Revenue.Amount)
	assert.Equal(t, "NGN", revenue.Revenue.Currency)

	assert.Equal(t, http.StatusNoContent, do(t, app, http.MethodDelete, base+"/sales/"+sale.ID, nil, nil))
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, base+"/products/"+widget.ID, nil, &product))
	assert.Equal(t, 100, product.Quantity)

	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodDelete, base+"/sales/"+sale.ID, nil, nil))
}

func TestSales_InvalidQuantity(t *testing.T) {
	app := buildTestApp()
	storeID := createStore(t, app)
	p := createProduct(t, app, storeID, map[string]any{"name": "Widget", "price": "10.00", "quantity": 10})

	var errResp dto.ErrorResponse
	status := do(t, app, http.MethodPost, "/api/stores/"+storeID+"/sales", map[string]any{"product_id": p.ID, "quantity": 0}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_QUANTITY", errResp.Code)
}

func TestSales_RevenueConversion(t *testing.T) {
	app := buildTestApp()
	storeID := createStore(t, app)
	base := "/api/stores/" + storeID
	ngn := createProduct(t, app, storeID, map[string]any{"name": "Widget", "price": "10.00", "quantity": 100})
	usd := createProduct(t, app, storeID, map[string]any{"name": "Gadget", "price": "2.00", "price_currency": "USD", "quantity": 100})
	do(t, app, http.MethodPost, base+"/sales", map[string]any{"product_id": ngn.ID, "quantity": 30}, nil)
	do(t, app, http.MethodPost, base+"/sales", map[string]any{"product_id": usd.ID, "quantity": 5}, nil)

	var errResp dto.ErrorResponse
	status := do(t, app, http.MethodGet, base+"/sales/revenue?currency=NGN", nil, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "CONVERSION_UNAVAILABLE", errResp.Code)

	var rate dto.ExchangeRateResponse
	status = do(t, app, http.MethodPut, "/api/exchange-rates/NGN", map[string]any{"rate": "1500"}, &rate)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "USD", rate.Base)

	var revenue dto.RevenueResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, base+"/sales/revenue?currency=ngn", nil, &revenue))
	assert.Equal(t, "15300.00", revenue.Revenue.Amount)

	status = do(t, app, http.MethodGet, base+"/sales/revenue?currency=XYZW", nil, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_CURRENCY", errResp.Code)

	var count dto.CountResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, base+"/sales/count?product_id="+usd.ID, nil, &count))
	assert.Equal(t, int64(1), count.Count)
}

func TestSales_ListAndCombine(t *testing.T) {
	app := buildTestApp()
	storeID := createStore(t, app)
	base := "/api/stores/" + storeID
	p := createProduct(t, app, storeID, map[string]any{"name": "Widget", "price": "10.00", "quantity": 100})
	q := createProduct(t, app, storeID, map[string]any{"name": "Gadget", "price": "1.00", "quantity": 100})

	var a, b, c dto.SaleResponse
	do(t, app, http.MethodPost, base+"/sales", map[string]any{"product_id": p.ID, "quantity": 5}, &a)
	do(t, app, http.MethodPost, base+"/sales", map[string]any{"product_id": p.ID, "quantity": 3}, &b)
	do(t, app, http.MethodPost, base+"/sales", map[string]any{"product_id": q.ID, "quantity": 1}, &c)

	var list dto.SaleListResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, base+"/sales?limit=2", nil, &list))
	assert.Len(t, list.Items, 2)
	assert.Equal(t, int64(3), list.Page.Total)

	var combined dto.SaleResponse
	status := do(t, app, http.MethodPost, base+"/sales/combine", map[string]any{"first_id": a.ID, "second_id": b.ID}, &combined)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 8, combined.Quantity)
	assert.Empty(t, combined.ID)
	require.NotNil(t, combined.Revenue)
	assert.Equal(t, "80.00", combined.Revenue.Amount)

	var errResp dto.ErrorResponse
	status = do(t, app, http.MethodPost, base+"/sales/combine", map[string]any{"first_id": a.ID, "second_id": c.ID}, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "PRODUCT_MISMATCH", errResp.Code)

	status = do(t, app, http.MethodGet, base+"/sales?from=yesterday", nil, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRequireStore(t *testing.T) {
	app := buildTestApp()

	var errResp dto.ErrorResponse
	status := do(t, app, http.MethodGet, "/api/stores/not-a-uuid/products", nil, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "STORE_NOT_FOUND", errResp.Code)

	status = do(t, app, http.MethodGet, "/api/stores/00000000-0000-0000-0000-000000000001/sales", nil, &errResp)
	assert.Equal(t, http.StatusNotFound, status)

	storeID := createStore(t, app)
	var store dto.StoreResponse
	require.Equal(t, http.StatusOK, do(t, app, http.MethodGet, "/api/stores/"+storeID, nil, &store))
	assert.Equal(t, "NGN", store.Currency)
}

func TestProducts_CrossStoreIsolation(t *testing.T) {
	app := buildTestApp()
	s1 := createStore(t, app)
	s2 := createStore(t, app)
	p := createProduct(t, app, s1, map[string]any{"name": "Widget", "price": "10.00", "quantity": 10})

	assert.Equal(t, http.StatusNotFound, do(t, app, http.MethodGet, "/api/stores/"+s2+"/products/"+p.ID, nil, nil))

	var errResp dto.ErrorResponse
	status := do(t, app, http.MethodPost, "/api/stores/"+s2+"/sales", map[string]any{"product_id": p.ID, "quantity": 1}, &errResp)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestExchangeRates_RefreshWithoutProvider(t *testing.T) {
	app := buildTestApp()
	var errResp dto.ErrorResponse
	status := do(t, app, http.MethodPost, "/api/exchange-rates/refresh", nil, &errResp)
	assert.Equal(t, http.StatusConflict, status)
}
