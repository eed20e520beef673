package entity

import "time"

// Supplier representa un proveedor.
type Supplier struct {
	ID             string
	Name           string
	Contact        string
	Email          string
	Phone          string
	Address        string
	Rating         float64 // 0 a 5, un decimal
	TotalOrders    int
	OnTimeDelivery float64 // porcentaje 0 a 100
	CreatedAt      time.Time
}
