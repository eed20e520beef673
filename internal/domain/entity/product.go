package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su stock disponible.
// Supplier es una referencia de texto libre, no una llave foránea.
type Product struct {
	ID           string
	SKU          string // código único, lo define quien crea el producto
	Name         string
	Description  string
	Category     string
	Price        decimal.Decimal // precio de venta
	Cost         decimal.Decimal // costo unitario
	Quantity     int             // stock disponible (>= 0)
	ReorderPoint int             // punto de reorden (>= 0)
	Supplier     string
	Barcode      string
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el producto está en o por debajo del punto de reorden.
func (p Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderPoint
}

// StockValue es el valor del inventario del producto a costo (Cost * Quantity).
func (p Product) StockValue() decimal.Decimal {
	return p.Cost.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
