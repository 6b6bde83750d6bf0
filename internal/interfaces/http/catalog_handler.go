package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Graphi-api/internal/application/dto"
	"github.com/jhoicas/Graphi-api/internal/application/usecase"
)

// CatalogHandler grupos y marcas de una tienda.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateGroup godoc
// @Summary      Crear grupo de productos
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        store_id  path  string                        true  "ID de la tienda"
// @Param        body      body  dto.CreateCatalogItemRequest  true  "Nombre"
// @Success      201  {object}  dto.CatalogItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stores/{store_id}/groups [post]
func (h *CatalogHandler) CreateGroup(c *fiber.Ctx) error {
	var in dto.CreateCatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateGroup(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListGroups godoc
// @Summary      Listar grupos de productos
// @Tags         catalog
// @Produce      json
// @Param        store_id  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /api/stores/{store_id}/groups [get]
func (h *CatalogHandler) ListGroups(c *fiber.Ctx) error {
	out, err := h.uc.ListGroups(c.UserContext(), GetStoreID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateBrand godoc
// @Summary      Crear marca
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        store_id  path  string                        true  "ID de la tienda"
// @Param        body      body  dto.CreateCatalogItemRequest  true  "Nombre"
// @Success      201  {object}  dto.CatalogItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stores/{store_id}/brands [post]
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var in dto.CreateCatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateBrand(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBrands godoc
// @Summary      Listar marcas
// @Tags         catalog
// @Produce      json
// @Param        store_id  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /api/stores/{store_id}/brands [get]
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	out, err := h.uc.ListBrands(c.UserContext(), GetStoreID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
