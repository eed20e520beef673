package inventory

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

// ProductPatch actualización parcial de un producto; los campos nil no se tocan.
type ProductPatch struct {
	SKU          *string
	Name         *string
	Description  *string
	Category     *string
	Price        *decimal.Decimal
	Cost         *decimal.Decimal
	Quantity     *int
	ReorderPoint *int
	Supplier     *string
	Barcode      *string
	ImageURL     *string
}

func (p ProductPatch) apply(dst *entity.Product) {
	setIf(&dst.SKU, p.SKU)
	setIf(&dst.Name, p.Name)
	setIf(&dst.Description, p.Description)
	setIf(&dst.Category, p.Category)
	setIf(&dst.Price, p.Price)
	setIf(&dst.Cost, p.Cost)
	setIf(&dst.Quantity, p.Quantity)
	setIf(&dst.ReorderPoint, p.ReorderPoint)
	setIf(&dst.Supplier, p.Supplier)
	setIf(&dst.Barcode, p.Barcode)
	setIf(&dst.ImageURL, p.ImageURL)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// AddProduct asigna id, createdAt y updatedAt y agrega el producto al final.
// Los valores de ID, CreatedAt y UpdatedAt del argumento se ignoran.
func (s *InventoryService) AddProduct(p entity.Product) entity.Product {
	now := s.now()
	p.ID = s.ids.NewID()
	p.CreatedAt = now
	p.UpdatedAt = now

	s.mu.Lock()
	s.products = appendCopy(s.products, p)
	s.mu.Unlock()

	record("product", "add", true)
	return p
}

// UpdateProduct aplica el patch y renueva UpdatedAt. Id desconocido: no hace nada y devuelve false.
func (s *InventoryService) UpdateProduct(id string, patch ProductPatch) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.products, func(p entity.Product) bool { return p.ID == id })
	if i < 0 {
		record("product", "update", false)
		return entity.Product{}, false
	}
	p := s.products[i]
	patch.apply(&p)
	p.UpdatedAt = s.now()
	s.products = replaceAt(s.products, i, p)
	record("product", "update", true)
	return p, true
}

// DeleteProduct quita el producto. No borra en cascada órdenes ni operaciones que lo referencian.
func (s *InventoryService) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.products, func(p entity.Product) bool { return p.ID == id })
	if i >= 0 {
		s.products = removeAt(s.products, i)
	}
	record("product", "delete", i >= 0)
	return i >= 0
}

// GetProduct busca un producto por id.
func (s *InventoryService) GetProduct(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.products, func(p entity.Product) bool { return p.ID == id })
	if i < 0 {
		return entity.Product{}, false
	}
	return s.products[i], true
}
