package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus estados de una orden de compra. No se validan transiciones.
type PurchaseOrderStatus string

const (
	PurchaseOrderDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderSent      PurchaseOrderStatus = "sent"
	PurchaseOrderReceived  PurchaseOrderStatus = "received"
	PurchaseOrderCancelled PurchaseOrderStatus = "cancelled"
)

// SalesOrderStatus estados de una orden de venta. No se validan transiciones.
type SalesOrderStatus string

const (
	SalesOrderDraft     SalesOrderStatus = "draft"
	SalesOrderConfirmed SalesOrderStatus = "confirmed"
	SalesOrderShipped   SalesOrderStatus = "shipped"
	SalesOrderDelivered SalesOrderStatus = "delivered"
	SalesOrderCancelled SalesOrderStatus = "cancelled"
)

// OrderItem representa una línea de una orden. ProductName es copia desnormalizada.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal // Quantity * UnitPrice
}

// PriceItems recalcula el total de cada línea y devuelve (líneas, subtotal).
// El slice de entrada no se modifica.
func PriceItems(items []OrderItem) ([]OrderItem, decimal.Decimal) {
	out := make([]OrderItem, len(items))
	subtotal := decimal.Zero
	for i, it := range items {
		it.Total = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(it.Total)
		out[i] = it
	}
	return out, subtotal
}

// PurchaseOrder representa una orden de compra a un proveedor.
// SupplierName es copia desnormalizada: borrar el proveedor no la afecta.
type PurchaseOrder struct {
	ID           string
	PONumber     string
	SupplierID   string
	SupplierName string
	Items        []OrderItem
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	Status       PurchaseOrderStatus
	OrderDate    time.Time
	ExpectedDate time.Time
	ReceivedDate *time.Time
}

// Clone copia la orden incluyendo sus líneas.
func (po PurchaseOrder) Clone() PurchaseOrder {
	po.Items = append([]OrderItem(nil), po.Items...)
	if po.ReceivedDate != nil {
		t := *po.ReceivedDate
		po.ReceivedDate = &t
	}
	return po
}

// SalesOrder representa una orden de venta a un cliente.
type SalesOrder struct {
	ID           string
	OrderNumber  string
	CustomerID   string
	CustomerName string
	Items        []OrderItem
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	Status       SalesOrderStatus
	OrderDate    time.Time
	DeliveryDate *time.Time
}

// Clone copia la orden incluyendo sus líneas.
func (so SalesOrder) Clone() SalesOrder {
	so.Items = append([]OrderItem(nil), so.Items...)
	if so.DeliveryDate != nil {
		t := *so.DeliveryDate
		so.DeliveryDate = &t
	}
	return so
}
