package inventory

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-admin/internal/domain"
	"github.com/jhoicas/inventory-admin/internal/domain/entity"
	domaininv "github.com/jhoicas/inventory-admin/internal/domain/inventory"
)

// StockOperationFilter filtros del historial. Term busca en producto y motivo.
type StockOperationFilter struct {
	Term string
	Type string
}

// StockOperationInput entrada para registrar una operación de stock.
// Quantity es positiva salvo en ajustes, donde es un delta con signo distinto de cero.
// UnitCost solo aplica a receive: recalcula el costo del producto por promedio ponderado.
type StockOperationInput struct {
	Type         string
	ProductID    string
	Quantity     int
	FromLocation string
	ToLocation   string
	Reason       string
	PerformedBy  string
	UnitCost     *decimal.Decimal
}

// StockOperations historial en orden de registro, filtrado.
func (s *InventoryService) StockOperations(f StockOperationFilter) []entity.StockOperation {
	s.mu.RLock()
	ops := slices.Clone(s.stockOperations)
	s.mu.RUnlock()

	m := newMatcher(f.Term)
	out := make([]entity.StockOperation, 0, len(ops))
	for _, op := range ops {
		if f.Type != "" && op.Type != f.Type {
			continue
		}
		if m.matches(op.ProductName, op.Reason) {
			out = append(out, op)
		}
	}
	return out
}

// RecordStockOperation valida la operación, aplica el cambio de cantidad al producto y
// guarda la operación como aprobada. Todo o nada: si falla, nada cambia.
//   - receive suma, issue resta, adjustment suma el delta con signo.
//   - transfer mueve entre ubicaciones y no cambia el total.
func (s *InventoryService) RecordStockOperation(in StockOperationInput) (entity.StockOperation, error) {
	switch in.Type {
	case entity.StockOpReceive, entity.StockOpIssue:
		if in.Quantity <= 0 {
			return entity.StockOperation{}, domain.ErrInvalidInput
		}
	case entity.StockOpAdjustment:
		if in.Quantity == 0 {
			return entity.StockOperation{}, domain.ErrInvalidInput
		}
	case entity.StockOpTransfer:
		if in.Quantity <= 0 || in.FromLocation == "" || in.ToLocation == "" || in.FromLocation == in.ToLocation {
			return entity.StockOperation{}, domain.ErrInvalidInput
		}
	default:
		return entity.StockOperation{}, domain.ErrInvalidInput
	}
	if in.ProductID == "" {
		return entity.StockOperation{}, domain.ErrInvalidInput
	}
	if in.UnitCost != nil && (in.Type != entity.StockOpReceive || in.UnitCost.IsNegative()) {
		return entity.StockOperation{}, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.products, func(p entity.Product) bool { return p.ID == in.ProductID })
	if i < 0 {
		return entity.StockOperation{}, domain.ErrNotFound
	}
	p := s.products[i]

	delta := 0
	switch in.Type {
	case entity.StockOpReceive:
		delta = in.Quantity
	case entity.StockOpIssue:
		delta = -in.Quantity
	case entity.StockOpAdjustment:
		delta = in.Quantity
	}
	if p.Quantity+delta < 0 {
		record("stock_operation", "add", false)
		return entity.StockOperation{}, domain.ErrInsufficientStock
	}

	now := s.now()
	op := entity.StockOperation{
		ID:           s.ids.NewID(),
		Type:         in.Type,
		ProductID:    p.ID,
		ProductName:  p.Name,
		Quantity:     in.Quantity,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Reason:       in.Reason,
		PerformedBy:  in.PerformedBy,
		Date:         now,
		Status:       entity.StockOpApproved,
	}
	if in.UnitCost != nil {
		p.Cost = domaininv.WeightedAverageCost(p.Quantity, p.Cost, in.Quantity, *in.UnitCost)
	}
	if delta != 0 {
		p.Quantity += delta
		p.UpdatedAt = now
		s.products = replaceAt(s.products, i, p)
	}
	s.stockOperations = appendCopy(s.stockOperations, op)
	record("stock_operation", "add", true)
	return op, nil
}
