package entity

import "time"

// Tipos de operación de stock.
const (
	StockOpAdjustment = "adjustment" // ajuste con cantidad con signo
	StockOpTransfer   = "transfer"   // traslado entre ubicaciones, no cambia el total
	StockOpReceive    = "receive"    // entrada
	StockOpIssue      = "issue"      // salida
)

// Estados de una operación de stock.
const (
	StockOpPending  = "pending"
	StockOpApproved = "approved"
	StockOpRejected = "rejected"
)

// StockOperation registra un movimiento sobre el stock de un producto.
type StockOperation struct {
	ID           string
	Type         string
	ProductID    string
	ProductName  string
	Quantity     int // con signo para ajustes
	FromLocation string
	ToLocation   string
	Reason       string
	PerformedBy  string
	Date         time.Time
	Status       string
}

// ValidStockOpType indica si t es un tipo de operación conocido.
func ValidStockOpType(t string) bool {
	switch t {
	case StockOpAdjustment, StockOpTransfer, StockOpReceive, StockOpIssue:
		return true
	}
	return false
}
