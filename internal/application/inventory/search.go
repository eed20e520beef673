package inventory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

// ProductFilter filtros de la vista de productos. Campos vacíos no filtran.
type ProductFilter struct {
	Term         string // coincide con nombre o SKU
	Category     string // coincidencia exacta
	LowStockOnly bool
}

// matcher compara sin distinguir mayúsculas usando case folding Unicode.
// cases.Caser no es seguro para uso concurrente: se crea uno por búsqueda.
type matcher struct {
	fold cases.Caser
	term string
}

func newMatcher(term string) *matcher {
	m := &matcher{fold: cases.Fold()}
	m.term = m.fold.String(strings.TrimSpace(term))
	return m
}

// matches indica si algún campo contiene el término. Término vacío coincide siempre.
func (m *matcher) matches(fields ...string) bool {
	if m.term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(m.fold.String(f), m.term) {
			return true
		}
	}
	return false
}

// SearchProducts filtra productos por término, categoría y stock bajo.
func (s *InventoryService) SearchProducts(f ProductFilter) []entity.Product {
	m := newMatcher(f.Term)
	out := make([]entity.Product, 0)
	for _, p := range s.Products() {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.LowStockOnly && !p.IsLowStock() {
			continue
		}
		if m.matches(p.Name, p.SKU) {
			out = append(out, p)
		}
	}
	return out
}

// SearchSuppliers filtra por nombre, email o contacto.
func (s *InventoryService) SearchSuppliers(term string) []entity.Supplier {
	m := newMatcher(term)
	out := make([]entity.Supplier, 0)
	for _, sup := range s.Suppliers() {
		if m.matches(sup.Name, sup.Email, sup.Contact) {
			out = append(out, sup)
		}
	}
	return out
}

// SearchCustomers filtra por nombre o email.
func (s *InventoryService) SearchCustomers(term string) []entity.Customer {
	m := newMatcher(term)
	out := make([]entity.Customer, 0)
	for _, c := range s.Customers() {
		if m.matches(c.Name, c.Email) {
			out = append(out, c)
		}
	}
	return out
}

// Categories categorías distintas en orden de primera aparición.
func (s *InventoryService) Categories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range s.Products() {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
