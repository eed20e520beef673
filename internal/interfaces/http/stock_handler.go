package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/application/inventory"
)

// StockHandler maneja el historial y el registro de operaciones de stock.
type StockHandler struct {
	svc *inventory.InventoryService
}

// NewStockHandler construye el handler.
func NewStockHandler(svc *inventory.InventoryService) *StockHandler {
	return &StockHandler{svc: svc}
}

// ListOperations godoc
// @Summary      Historial de operaciones de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  false  "Busca en producto o motivo"
// @Param        type  query  string  false  "adjustment | transfer | receive | issue"
// @Success      200  {array}  dto.StockOperationResponse
// @Router       /api/stock/operations [get]
func (h *StockHandler) ListOperations(c *fiber.Ctx) error {
	var q dto.StockOperationQuery
	if err := c.QueryParser(&q); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_QUERY", "parámetros inválidos")
	}
	ops := h.svc.StockOperations(inventory.StockOperationFilter{Term: q.Q, Type: q.Type})
	return c.JSON(dto.NewStockOperationResponses(ops))
}

// RecordOperation godoc
// @Summary      Registrar operación de stock
// @Description  receive suma, issue resta, adjustment aplica un delta con signo, transfer no cambia el total.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOperationRequest  true  "Operación"
// @Success      201   {object}  dto.StockOperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/operations [post]
func (h *StockHandler) RecordOperation(c *fiber.Ctx) error {
	var in dto.StockOperationRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	performedBy := ""
	if u := GetUser(c); u != nil {
		performedBy = u.Name
	}
	op, err := h.svc.RecordStockOperation(in.ToInput(performedBy))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewStockOperationResponse(op))
}
