package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/application/inventory"
)

// OrderHandler maneja órdenes de compra y de venta. Los totales los calcula el servicio.
type OrderHandler struct {
	svc *inventory.InventoryService
}

func NewOrderHandler(svc *inventory.InventoryService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// ListPurchaseOrders godoc
// @Summary      Listar órdenes de compra
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.PurchaseOrderResponse]
// @Router       /api/purchase-orders [get]
func (h *OrderHandler) ListPurchaseOrders(c *fiber.Ctx) error {
	page, ok, err := parsePage(c)
	if !ok {
		return err
	}
	return c.JSON(dto.Paginate(dto.NewPurchaseOrderResponses(h.svc.PurchaseOrders()), page))
}

func (h *OrderHandler) GetPurchaseOrder(c *fiber.Ctx) error {
	po, ok := h.svc.GetPurchaseOrder(c.Params("id"))
	if !ok {
		return notFound(c, "orden de compra")
	}
	return c.JSON(dto.NewPurchaseOrderResponse(po))
}

// CreatePurchaseOrder godoc
// @Summary      Crear orden de compra
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "Orden; subtotal y total se calculan"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *OrderHandler) CreatePurchaseOrder(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	po := h.svc.AddPurchaseOrder(in.ToEntity())
	return c.Status(fiber.StatusCreated).JSON(dto.NewPurchaseOrderResponse(po))
}

// UpdatePurchaseOrder godoc
// @Summary      Actualizar orden de compra (parcial, sin validar transiciones de estado)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdatePurchaseOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PurchaseOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [put]
func (h *OrderHandler) UpdatePurchaseOrder(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	po, ok := h.svc.UpdatePurchaseOrder(c.Params("id"), in.ToPatch())
	if !ok {
		return notFound(c, "orden de compra")
	}
	return c.JSON(dto.NewPurchaseOrderResponse(po))
}

func (h *OrderHandler) DeletePurchaseOrder(c *fiber.Ctx) error {
	if !h.svc.DeletePurchaseOrder(c.Params("id")) {
		return notFound(c, "orden de compra")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListSalesOrders godoc
// @Summary      Listar órdenes de venta
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.SalesOrderResponse]
// @Router       /api/sales-orders [get]
func (h *OrderHandler) ListSalesOrders(c *fiber.Ctx) error {
	page, ok, err := parsePage(c)
	if !ok {
		return err
	}
	return c.JSON(dto.Paginate(dto.NewSalesOrderResponses(h.svc.SalesOrders()), page))
}

func (h *OrderHandler) GetSalesOrder(c *fiber.Ctx) error {
	so, ok := h.svc.GetSalesOrder(c.Params("id"))
	if !ok {
		return notFound(c, "orden de venta")
	}
	return c.JSON(dto.NewSalesOrderResponse(so))
}

func (h *OrderHandler) CreateSalesOrder(c *fiber.Ctx) error {
	var in dto.CreateSalesOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	so := h.svc.AddSalesOrder(in.ToEntity())
	return c.Status(fiber.StatusCreated).JSON(dto.NewSalesOrderResponse(so))
}

func (h *OrderHandler) UpdateSalesOrder(c *fiber.Ctx) error {
	var in dto.UpdateSalesOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	so, ok := h.svc.UpdateSalesOrder(c.Params("id"), in.ToPatch())
	if !ok {
		return notFound(c, "orden de venta")
	}
	return c.JSON(dto.NewSalesOrderResponse(so))
}

func (h *OrderHandler) DeleteSalesOrder(c *fiber.Ctx) error {
	if !h.svc.DeleteSalesOrder(c.Params("id")) {
		return notFound(c, "orden de venta")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
