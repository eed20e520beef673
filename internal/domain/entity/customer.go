package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente del negocio.
type Customer struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Address     string
	TotalOrders int
	TotalSpent  decimal.Decimal // acumulado histórico
	CreatedAt   time.Time
}
