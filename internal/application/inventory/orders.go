package inventory

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

// PurchaseOrderPatch actualización parcial de una orden de compra.
// Si cambian Items o Tax se recalculan los totales de línea, Subtotal y Total.
type PurchaseOrderPatch struct {
	PONumber     *string
	SupplierID   *string
	SupplierName *string
	Items        *[]entity.OrderItem
	Tax          *decimal.Decimal
	Status       *entity.PurchaseOrderStatus
	OrderDate    *time.Time
	ExpectedDate *time.Time
	ReceivedDate *time.Time
}

// SalesOrderPatch actualización parcial de una orden de venta.
type SalesOrderPatch struct {
	OrderNumber  *string
	CustomerID   *string
	CustomerName *string
	Items        *[]entity.OrderItem
	Tax          *decimal.Decimal
	Status       *entity.SalesOrderStatus
	OrderDate    *time.Time
	DeliveryDate *time.Time
}

// AddPurchaseOrder asigna id, calcula totales (Total = Subtotal + Tax) y agrega la orden.
// OrderDate vacío toma la hora actual.
func (s *InventoryService) AddPurchaseOrder(po entity.PurchaseOrder) entity.PurchaseOrder {
	po = po.Clone()
	po.ID = s.ids.NewID()
	if po.OrderDate.IsZero() {
		po.OrderDate = s.now()
	}
	po.Items, po.Subtotal = entity.PriceItems(po.Items)
	po.Total = po.Subtotal.Add(po.Tax)

	s.mu.Lock()
	s.purchaseOrders = appendCopy(s.purchaseOrders, po)
	s.mu.Unlock()

	record("purchase_order", "add", true)
	return po.Clone()
}

// UpdatePurchaseOrder aplica el patch. No valida transiciones de estado.
func (s *InventoryService) UpdatePurchaseOrder(id string, patch PurchaseOrderPatch) (entity.PurchaseOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.purchaseOrders, func(x entity.PurchaseOrder) bool { return x.ID == id })
	if i < 0 {
		record("purchase_order", "update", false)
		return entity.PurchaseOrder{}, false
	}
	po := s.purchaseOrders[i].Clone()
	setIf(&po.PONumber, patch.PONumber)
	setIf(&po.SupplierID, patch.SupplierID)
	setIf(&po.SupplierName, patch.SupplierName)
	setIf(&po.Status, patch.Status)
	setIf(&po.OrderDate, patch.OrderDate)
	setIf(&po.ExpectedDate, patch.ExpectedDate)
	if patch.ReceivedDate != nil {
		t := *patch.ReceivedDate
		po.ReceivedDate = &t
	}
	if patch.Items != nil || patch.Tax != nil {
		if patch.Items != nil {
			po.Items = *patch.Items
		}
		setIf(&po.Tax, patch.Tax)
		po.Items, po.Subtotal = entity.PriceItems(po.Items)
		po.Total = po.Subtotal.Add(po.Tax)
	}
	s.purchaseOrders = replaceAt(s.purchaseOrders, i, po)
	record("purchase_order", "update", true)
	return po.Clone(), true
}

// DeletePurchaseOrder quita la orden de compra.
func (s *InventoryService) DeletePurchaseOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.purchaseOrders, func(x entity.PurchaseOrder) bool { return x.ID == id })
	if i >= 0 {
		s.purchaseOrders = removeAt(s.purchaseOrders, i)
	}
	record("purchase_order", "delete", i >= 0)
	return i >= 0
}

func (s *InventoryService) GetPurchaseOrder(id string) (entity.PurchaseOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.purchaseOrders, func(x entity.PurchaseOrder) bool { return x.ID == id })
	if i < 0 {
		return entity.PurchaseOrder{}, false
	}
	return s.purchaseOrders[i].Clone(), true
}

// AddSalesOrder asigna id, calcula totales y agrega la orden.
func (s *InventoryService) AddSalesOrder(so entity.SalesOrder) entity.SalesOrder {
	so = so.Clone()
	so.ID = s.ids.NewID()
	if so.OrderDate.IsZero() {
		so.OrderDate = s.now()
	}
	so.Items, so.Subtotal = entity.PriceItems(so.Items)
	so.Total = so.Subtotal.Add(so.Tax)

	s.mu.Lock()
	s.salesOrders = appendCopy(s.salesOrders, so)
	s.mu.Unlock()

	record("sales_order", "add", true)
	return so.Clone()
}

// UpdateSalesOrder aplica el patch. No valida transiciones de estado.
func (s *InventoryService) UpdateSalesOrder(id string, patch SalesOrderPatch) (entity.SalesOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.salesOrders, func(x entity.SalesOrder) bool { return x.ID == id })
	if i < 0 {
		record("sales_order", "update", false)
		return entity.SalesOrder{}, false
	}
	so := s.salesOrders[i].Clone()
	setIf(&so.OrderNumber, patch.OrderNumber)
	setIf(&so.CustomerID, patch.CustomerID)
	setIf(&so.CustomerName, patch.CustomerName)
	setIf(&so.Status, patch.Status)
	setIf(&so.OrderDate, patch.OrderDate)
	if patch.DeliveryDate != nil {
		t := *patch.DeliveryDate
		so.DeliveryDate = &t
	}
	if patch.Items != nil || patch.Tax != nil {
		if patch.Items != nil {
			so.Items = *patch.Items
		}
		setIf(&so.Tax, patch.Tax)
		so.Items, so.Subtotal = entity.PriceItems(so.Items)
		so.Total = so.Subtotal.Add(so.Tax)
	}
	s.salesOrders = replaceAt(s.salesOrders, i, so)
	record("sales_order", "update", true)
	return so.Clone(), true
}

// DeleteSalesOrder quita la orden de venta.
func (s *InventoryService) DeleteSalesOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.salesOrders, func(x entity.SalesOrder) bool { return x.ID == id })
	if i >= 0 {
		s.salesOrders = removeAt(s.salesOrders, i)
	}
	record("sales_order", "delete", i >= 0)
	return i >= 0
}

func (s *InventoryService) GetSalesOrder(id string) (entity.SalesOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.salesOrders, func(x entity.SalesOrder) bool { return x.ID == id })
	if i < 0 {
		return entity.SalesOrder{}, false
	}
	return s.salesOrders[i].Clone(), true
}
