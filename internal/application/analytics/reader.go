// Package analytics contiene los casos de uso de lectura agregada: el resumen del
// dashboard y el reporte de inventario con sus exportaciones.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

// InventoryReader lo que analytics necesita del almacén de inventario.
// *inventory.InventoryService lo implementa.
type InventoryReader interface {
	Products() []entity.Product
	Customers() []entity.Customer
	PurchaseOrders() []entity.PurchaseOrder
	SalesOrders() []entity.SalesOrder
	GetLowStockProducts() []entity.Product
	GetInventoryValue() decimal.Decimal
	GetTopSellingProducts() []entity.Product
}
