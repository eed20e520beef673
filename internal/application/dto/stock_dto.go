package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-admin/internal/application/inventory"
	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

// StockOperationQuery filtros de GET /api/stock/operations.
type StockOperationQuery struct {
	Q    string `query:"q"`
	Type string `query:"type"`
}

// StockOperationRequest entrada para registrar una operación de stock.
// Quantity es un delta con signo solo para adjustment.
type StockOperationRequest struct {
	Type         string `json:"type" validate:"required,oneof=adjustment transfer receive issue"`
	ProductID    string `json:"product_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"ne=0"`
	FromLocation string `json:"from_location" validate:"required_if=Type transfer"`
	ToLocation   string `json:"to_location" validate:"required_if=Type transfer"`
	Reason       string `json:"reason" validate:"required,max=500"`
	// UnitCost costo unitario de la entrada (solo receive).
	UnitCost *decimal.Decimal `json:"unit_cost" validate:"omitempty,gte=0"`
}

// ToInput construye la entrada del servicio; performedBy es el nombre del usuario autenticado.
func (r StockOperationRequest) ToInput(performedBy string) inventory.StockOperationInput {
	return inventory.StockOperationInput{
		Type:         r.Type,
		ProductID:    r.ProductID,
		Quantity:     r.Quantity,
		FromLocation: r.FromLocation,
		ToLocation:   r.ToLocation,
		Reason:       r.Reason,
		PerformedBy:  performedBy,
		UnitCost:     r.UnitCost,
	}
}

// StockOperationResponse salida de una operación de stock.
type StockOperationResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	ProductID    string    `json:"product_id,omitempty"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	FromLocation string    `json:"from_location,omitempty"`
	ToLocation   string    `json:"to_location,omitempty"`
	Reason       string    `json:"reason"`
	PerformedBy  string    `json:"performed_by"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`
}

func NewStockOperationResponse(op entity.StockOperation) StockOperationResponse {
	return StockOperationResponse{
		ID:           op.ID,
		Type:         op.Type,
		ProductID:    op.ProductID,
		ProductName:  op.ProductName,
		Quantity:     op.Quantity,
		FromLocation: op.FromLocation,
		ToLocation:   op.ToLocation,
		Reason:       op.Reason,
		PerformedBy:  op.PerformedBy,
		Date:         op.Date,
		Status:       op.Status,
	}
}

func NewStockOperationResponses(ops []entity.StockOperation) []StockOperationResponse {
	out := make([]StockOperationResponse, 0, len(ops))
	for _, op := range ops {
		out = append(out, NewStockOperationResponse(op))
	}
	return out
}
