package inventory

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

// SupplierPatch actualización parcial de un proveedor.
type SupplierPatch struct {
	Name           *string
	Contact        *string
	Email          *string
	Phone          *string
	Address        *string
	Rating         *float64
	TotalOrders    *int
	OnTimeDelivery *float64
}

func (p SupplierPatch) apply(dst *entity.Supplier) {
	setIf(&dst.Name, p.Name)
	setIf(&dst.Contact, p.Contact)
	setIf(&dst.Email, p.Email)
	setIf(&dst.Phone, p.Phone)
	setIf(&dst.Address, p.Address)
	setIf(&dst.Rating, p.Rating)
	setIf(&dst.TotalOrders, p.TotalOrders)
	setIf(&dst.OnTimeDelivery, p.OnTimeDelivery)
}

// CustomerPatch actualización parcial de un cliente.
type CustomerPatch struct {
	Name        *string
	Email       *string
	Phone       *string
	Address     *string
	TotalOrders *int
	TotalSpent  *decimal.Decimal
}

func (p CustomerPatch) apply(dst *entity.Customer) {
	setIf(&dst.Name, p.Name)
	setIf(&dst.Email, p.Email)
	setIf(&dst.Phone, p.Phone)
	setIf(&dst.Address, p.Address)
	setIf(&dst.TotalOrders, p.TotalOrders)
	setIf(&dst.TotalSpent, p.TotalSpent)
}

// AddSupplier asigna id y createdAt y agrega el proveedor.
func (s *InventoryService) AddSupplier(sup entity.Supplier) entity.Supplier {
	sup.ID = s.ids.NewID()
	sup.CreatedAt = s.now()

	s.mu.Lock()
	s.suppliers = appendCopy(s.suppliers, sup)
	s.mu.Unlock()

	record("supplier", "add", true)
	return sup
}

// UpdateSupplier aplica el patch; id desconocido devuelve false.
func (s *InventoryService) UpdateSupplier(id string, patch SupplierPatch) (entity.Supplier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.suppliers, func(x entity.Supplier) bool { return x.ID == id })
	if i < 0 {
		record("supplier", "update", false)
		return entity.Supplier{}, false
	}
	sup := s.suppliers[i]
	patch.apply(&sup)
	s.suppliers = replaceAt(s.suppliers, i, sup)
	record("supplier", "update", true)
	return sup, true
}

// DeleteSupplier quita el proveedor. Las órdenes conservan su SupplierName.
func (s *InventoryService) DeleteSupplier(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.suppliers, func(x entity.Supplier) bool { return x.ID == id })
	if i >= 0 {
		s.suppliers = removeAt(s.suppliers, i)
	}
	record("supplier", "delete", i >= 0)
	return i >= 0
}

func (s *InventoryService) GetSupplier(id string) (entity.Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.suppliers, func(x entity.Supplier) bool { return x.ID == id })
	if i < 0 {
		return entity.Supplier{}, false
	}
	return s.suppliers[i], true
}

// AddCustomer asigna id y createdAt y agrega el cliente.
func (s *InventoryService) AddCustomer(c entity.Customer) entity.Customer {
	c.ID = s.ids.NewID()
	c.CreatedAt = s.now()

	s.mu.Lock()
	s.customers = appendCopy(s.customers, c)
	s.mu.Unlock()

	record("customer", "add", true)
	return c
}

// UpdateCustomer aplica el patch; id desconocido devuelve false.
func (s *InventoryService) UpdateCustomer(id string, patch CustomerPatch) (entity.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.customers, func(x entity.Customer) bool { return x.ID == id })
	if i < 0 {
		record("customer", "update", false)
		return entity.Customer{}, false
	}
	c := s.customers[i]
	patch.apply(&c)
	s.customers = replaceAt(s.customers, i, c)
	record("customer", "update", true)
	return c, true
}

// DeleteCustomer quita el cliente.
func (s *InventoryService) DeleteCustomer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.customers, func(x entity.Customer) bool { return x.ID == id })
	if i >= 0 {
		s.customers = removeAt(s.customers, i)
	}
	record("customer", "delete", i >= 0)
	return i >= 0
}

func (s *InventoryService) GetCustomer(id string) (entity.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.customers, func(x entity.Customer) bool { return x.ID == id })
	if i < 0 {
		return entity.Customer{}, false
	}
	return s.customers[i], true
}
