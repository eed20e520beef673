package inventory

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

// TopProductsLimit máximo de productos que devuelve GetTopSellingProducts.
const TopProductsLimit = 5

// GetLowStockProducts productos con Quantity <= ReorderPoint, en orden de colección.
func (s *InventoryService) GetLowStockProducts() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, 0)
	for _, p := range s.products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

// GetInventoryValue suma Cost * Quantity de todos los productos.
func (s *InventoryService) GetInventoryValue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, p := range s.products {
		total = total.Add(p.StockValue())
	}
	return total
}

// GetTopSellingProducts hasta 5 productos por cantidad en stock descendente.
// Ordena por existencias, no por unidades vendidas. Empates conservan el orden de colección.
func (s *InventoryService) GetTopSellingProducts() []entity.Product {
	s.mu.RLock()
	sorted := slices.Clone(s.products)
	s.mu.RUnlock()

	slices.SortStableFunc(sorted, func(a, b entity.Product) int {
		return cmp.Compare(b.Quantity, a.Quantity)
	})
	if len(sorted) > TopProductsLimit {
		sorted = sorted[:TopProductsLimit]
	}
	if sorted == nil {
		sorted = []entity.Product{}
	}
	return sorted
}
