// Package inventory contiene el almacén de dominio en memoria: productos, proveedores,
// clientes, órdenes de compra, órdenes de venta y operaciones de stock.
package inventory

import (
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/inventory-admin/internal/domain/entity"
	"github.com/jhoicas/inventory-admin/internal/metrics"
)

// Snapshot es el contenido inicial del almacén.
type Snapshot struct {
	Products        []entity.Product
	Suppliers       []entity.Supplier
	Customers       []entity.Customer
	PurchaseOrders  []entity.PurchaseOrder
	SalesOrders     []entity.SalesOrder
	StockOperations []entity.StockOperation
}

// InventoryService guarda las colecciones en memoria; nunca se persisten.
// Cada mutación construye un slice nuevo y lo reemplaza bajo el lock de escritura;
// las lecturas devuelven copias.
type InventoryService struct {
	ids IDGenerator
	now func() time.Time

	mu              sync.RWMutex
	products        []entity.Product
	suppliers       []entity.Supplier
	customers       []entity.Customer
	purchaseOrders  []entity.PurchaseOrder
	salesOrders     []entity.SalesOrder
	stockOperations []entity.StockOperation
}

// NewInventoryService construye el servicio con el snapshot dado. ids y clock son opcionales.
func NewInventoryService(ids IDGenerator, clock func() time.Time, seed Snapshot) *InventoryService {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &InventoryService{
		ids:             ids,
		now:             clock,
		products:        slices.Clone(seed.Products),
		suppliers:       slices.Clone(seed.Suppliers),
		customers:       slices.Clone(seed.Customers),
		purchaseOrders:  clonePurchaseOrders(seed.PurchaseOrders),
		salesOrders:     cloneSalesOrders(seed.SalesOrders),
		stockOperations: slices.Clone(seed.StockOperations),
	}
}

// Products devuelve los productos en orden de inserción.
func (s *InventoryService) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

// Suppliers devuelve los proveedores en orden de inserción.
func (s *InventoryService) Suppliers() []entity.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.suppliers)
}

// Customers devuelve los clientes en orden de inserción.
func (s *InventoryService) Customers() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.customers)
}

// PurchaseOrders devuelve las órdenes de compra en orden de inserción.
func (s *InventoryService) PurchaseOrders() []entity.PurchaseOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePurchaseOrders(s.purchaseOrders)
}

// SalesOrders devuelve las órdenes de venta en orden de inserción.
func (s *InventoryService) SalesOrders() []entity.SalesOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSalesOrders(s.salesOrders)
}

func clonePurchaseOrders(in []entity.PurchaseOrder) []entity.PurchaseOrder {
	if in == nil {
		return nil
	}
	out := make([]entity.PurchaseOrder, len(in))
	for i, po := range in {
		out[i] = po.Clone()
	}
	return out
}

func cloneSalesOrders(in []entity.SalesOrder) []entity.SalesOrder {
	if in == nil {
		return nil
	}
	out := make([]entity.SalesOrder, len(in))
	for i, so := range in {
		out[i] = so.Clone()
	}
	return out
}

// replaceAt devuelve una copia de xs con v en la posición i.
func replaceAt[T any](xs []T, i int, v T) []T {
	out := slices.Clone(xs)
	out[i] = v
	return out
}

// removeAt devuelve una copia de xs sin la posición i.
func removeAt[T any](xs []T, i int) []T {
	out := make([]T, 0, len(xs)-1)
	out = append(out, xs[:i]...)
	return append(out, xs[i+1:]...)
}

// appendCopy devuelve una copia de xs con v al final.
func appendCopy[T any](xs []T, v T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, xs...)
	return append(out, v)
}

func record(entityName, op string, applied bool) {
	metrics.RecordMutation(entityName, op, applied)
}
