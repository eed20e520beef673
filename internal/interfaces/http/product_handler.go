package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/application/inventory"
)

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	svc *inventory.InventoryService
}

// NewProductHandler construye el handler.
func NewProductHandler(svc *inventory.InventoryService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q          query  string  false  "Busca en nombre o SKU"
// @Param        category   query  string  false  "Categoría exacta"
// @Param        low_stock  query  bool    false  "Solo stock bajo"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ProductQuery
	if err := c.QueryParser(&q); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_QUERY", "parámetros inválidos")
	}
	page, ok, err := parsePage(c)
	if !ok {
		return err
	}
	products := h.svc.SearchProducts(inventory.ProductFilter{
		Term:         q.Q,
		Category:     q.Category,
		LowStockOnly: q.LowStock,
	})
	return c.JSON(dto.Paginate(dto.NewProductResponses(products), page))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	p, ok := h.svc.GetProduct(c.Params("id"))
	if !ok {
		return notFound(c, "producto")
	}
	return c.JSON(dto.NewProductResponse(p))
}

// LowStock godoc
// @Summary      Productos en o bajo el punto de reorden
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(dto.NewProductResponses(h.svc.GetLowStockProducts()))
}

// Top godoc
// @Summary      Hasta 5 productos con más existencias
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/top [get]
func (h *ProductHandler) Top(c *fiber.Ctx) error {
	return c.JSON(dto.NewProductResponses(h.svc.GetTopSellingProducts()))
}

// Categories godoc
// @Summary      Categorías distintas
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.svc.Categories())
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p := h.svc.AddProduct(in.ToEntity())
	return c.Status(fiber.StatusCreated).JSON(dto.NewProductResponse(p))
}

// Update godoc
// @Summary      Actualizar producto (parcial)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, ok := h.svc.UpdateProduct(c.Params("id"), in.ToPatch())
	if !ok {
		return notFound(c, "producto")
	}
	return c.JSON(dto.NewProductResponse(p))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if !h.svc.DeleteProduct(c.Params("id")) {
		return notFound(c, "producto")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
