package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Graphi-api/internal/application/dto"
	"github.com/jhoicas/Graphi-api/internal/application/sales"
	"github.com/jhoicas/Graphi-api/internal/domain/entity"
	"github.com/jhoicas/Graphi-api/internal/domain/repository"
)

// SaleHandler maneja el libro de ventas de una tienda.
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Commit godoc
// @Summary      Registrar venta
// @Description  Inserta la venta y descuenta el stock del producto en una sola transacción.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        store_id  path  string                 true  "ID de la tienda"
// @Param        body      body  dto.CommitSaleRequest  true  "Producto y cantidad"
// @Success      201  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Stock insuficiente (details.available)"
// @Router       /api/stores/{store_id}/sales [post]
func (h *SaleHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sale, err := h.uc.Commit(c.UserContext(), GetStoreID(c), in.ProductID, in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(sale))
}

// Reverse godoc
// @Summary      Revertir venta
// @Description  Elimina la venta y devuelve su cantidad al stock.
// @Tags         sales
// @Param        store_id  path  string  true  "ID de la tienda"
// @Param        id        path  string  true  "ID de la venta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{store_id}/sales/{id} [delete]
func (h *SaleHandler) Reverse(c *fiber.Ctx) error {
	if err := h.uc.Reverse(c.UserContext(), GetStoreID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obtener venta
// @Tags         sales
// @Produce      json
// @Param        store_id  path  string  true  "ID de la tienda"
// @Param        id        path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{store_id}/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.Get(c.UserContext(), GetStoreID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toSaleResponse(sale))
}

// List godoc
// @Summary      Listar ventas
// @Description  Más recientes primero. Filtros opcionales por producto, grupo, marca, categoría y rango de fechas (RFC3339).
// @Tags         sales
// @Produce      json
// @Param        store_id    path   string  true   "ID de la tienda"
// @Param        product_id  query  string  false  "Producto"
// @Param        group_id    query  string  false  "Grupo"
// @Param        brand_id    query  string  false  "Marca"
// @Param        category    query  string  false  "Categoría"
// @Param        from        query  string  false  "Desde (RFC3339)"
// @Param        to          query  string  false  "Hasta (RFC3339)"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.SaleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stores/{store_id}/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	filter, ok := saleFilterFromQuery(c)
	if !ok {
		return invalidDate(c)
	}
	page := pageFromQuery(c)
	list, err := h.uc.List(c.UserContext(), filter, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	total, err := h.uc.Count(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSaleResponse(s))
	}
	return c.JSON(dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// Revenue godoc
// @Summary      Ingreso total
// @Description  Suma el ingreso de las ventas del filtro convertido a currency (por defecto la moneda de la tienda).
// @Tags         sales
// @Produce      json
// @Param        store_id    path   string  true   "ID de la tienda"
// @Param        currency    query  string  false  "Moneda destino (ISO-4217)"
// @Param        product_id  query  string  false  "Producto"
// @Param        category    query  string  false  "Categoría"
// @Param        from        query  string  false  "Desde (RFC3339)"
// @Param        to          query  string  false  "Hasta (RFC3339)"
// @Success      200  {object}  dto.RevenueResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse  "Sin tasa de cambio"
// @Router       /api/stores/{store_id}/sales/revenue [get]
func (h *SaleHandler) Revenue(c *fiber.Ctx) error {
	filter, ok := saleFilterFromQuery(c)
	if !ok {
		return invalidDate(c)
	}
	target := c.Query("currency", GetStoreCurrency(c))
	total, err := h.uc.TotalRevenue(c.UserContext(), target, filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.RevenueResponse{Revenue: dto.NewMoneyResponse(total)})
}

// Count godoc
// @Summary      Contar ventas
// @Tags         sales
// @Produce      json
// @Param        store_id  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.CountResponse
// @Router       /api/stores/{store_id}/sales/count [get]
func (h *SaleHandler) Count(c *fiber.Ctx) error {
	filter, ok := saleFilterFromQuery(c)
	if !ok {
		return invalidDate(c)
	}
	n, err := h.uc.Count(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CountResponse{Count: n})
}

// Combine godoc
// @Summary      Combinar dos ventas
// @Description  Devuelve la suma (o resta) de dos ventas del mismo producto sin guardarla.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        store_id  path  string                   true  "ID de la tienda"
// @Param        body      body  dto.CombineSalesRequest  true  "Ventas a combinar"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse  "Productos distintos"
// @Router       /api/stores/{store_id}/sales/combine [post]
func (h *SaleHandler) Combine(c *fiber.Ctx) error {
	var in dto.CombineSalesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.FirstID == "" || in.SecondID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "first_id y second_id son requeridos"})
	}
	sale, err := h.uc.Combine(c.UserContext(), GetStoreID(c), in.FirstID, in.SecondID, in.Subtract)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toSaleResponse(sale))
}

// saleFilterFromQuery arma el filtro; ok=false si from/to no son RFC3339.
func saleFilterFromQuery(c *fiber.Ctx) (repository.SaleFilter, bool) {
	f := repository.SaleFilter{
		StoreID:   GetStoreID(c),
		ProductID: c.Query("product_id"),
		GroupID:   c.Query("group_id"),
		BrandID:   c.Query("brand_id"),
		Category:  c.Query("category"),
	}
	for key, dst := range map[string]**time.Time{"from": &f.From, "to": &f.To} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return f, false
		}
		*dst = &t
	}
	return f, true
}

func invalidDate(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben ser RFC3339"})
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	out := dto.SaleResponse{
		ID:        s.ID,
		StoreID:   s.StoreID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
	}
	if !s.MadeAt.IsZero() {
		madeAt, updatedAt := s.MadeAt, s.UpdatedAt
		out.MadeAt, out.UpdatedAt = &madeAt, &updatedAt
	}
	if s.Product != nil {
		out.ProductName = s.Product.Name
	}
	if revenue, err := s.Revenue(); err == nil {
		r := dto.NewMoneyResponse(revenue)
		out.Revenue = &r
	}
	return out
}
