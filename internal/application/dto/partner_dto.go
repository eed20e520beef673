package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-admin/internal/application/inventory"
	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=200"`
	Contact        string  `json:"contact" validate:"max=200"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Phone          string  `json:"phone" validate:"max=50"`
	Address        string  `json:"address"`
	Rating         float64 `json:"rating" validate:"gte=0,lte=5"`
	TotalOrders    int     `json:"total_orders" validate:"gte=0"`
	OnTimeDelivery float64 `json:"on_time_delivery" validate:"gte=0,lte=100"`
}

func (r CreateSupplierRequest) ToEntity() entity.Supplier {
	return entity.Supplier{
		Name:           r.Name,
		Contact:        r.Contact,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		Rating:         r.Rating,
		TotalOrders:    r.TotalOrders,
		OnTimeDelivery: r.OnTimeDelivery,
	}
}

// UpdateSupplierRequest actualización parcial de un proveedor.
type UpdateSupplierRequest struct {
	Name           *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Contact        *string  `json:"contact" validate:"omitempty,max=200"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	Phone          *string  `json:"phone" validate:"omitempty,max=50"`
	Address        *string  `json:"address"`
	Rating         *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	TotalOrders    *int     `json:"total_orders" validate:"omitempty,gte=0"`
	OnTimeDelivery *float64 `json:"on_time_delivery" validate:"omitempty,gte=0,lte=100"`
}

func (r UpdateSupplierRequest) ToPatch() inventory.SupplierPatch {
	return inventory.SupplierPatch{
		Name:           r.Name,
		Contact:        r.Contact,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		Rating:         r.Rating,
		TotalOrders:    r.TotalOrders,
		OnTimeDelivery: r.OnTimeDelivery,
	}
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Contact        string    `json:"contact"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Rating         float64   `json:"rating"`
	TotalOrders    int       `json:"total_orders"`
	OnTimeDelivery float64   `json:"on_time_delivery"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewSupplierResponse(s entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:             s.ID,
		Name:           s.Name,
		Contact:        s.Contact,
		Email:          s.Email,
		Phone:          s.Phone,
		Address:        s.Address,
		Rating:         s.Rating,
		TotalOrders:    s.TotalOrders,
		OnTimeDelivery: s.OnTimeDelivery,
		CreatedAt:      s.CreatedAt,
	}
}

func NewSupplierResponses(ss []entity.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, NewSupplierResponse(s))
	}
	return out
}

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Email       string          `json:"email" validate:"omitempty,email"`
	Phone       string          `json:"phone" validate:"max=50"`
	Address     string          `json:"address"`
	TotalOrders int             `json:"total_orders" validate:"gte=0"`
	TotalSpent  decimal.Decimal `json:"total_spent" validate:"gte=0"`
}

func (r CreateCustomerRequest) ToEntity() entity.Customer {
	return entity.Customer{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		TotalOrders: r.TotalOrders,
		TotalSpent:  r.TotalSpent,
	}
}

// UpdateCustomerRequest actualización parcial de un cliente.
type UpdateCustomerRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Email       *string          `json:"email" validate:"omitempty,email"`
	Phone       *string          `json:"phone" validate:"omitempty,max=50"`
	Address     *string          `json:"address"`
	TotalOrders *int             `json:"total_orders" validate:"omitempty,gte=0"`
	TotalSpent  *decimal.Decimal `json:"total_spent" validate:"omitempty,gte=0"`
}

func (r UpdateCustomerRequest) ToPatch() inventory.CustomerPatch {
	return inventory.CustomerPatch{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		TotalOrders: r.TotalOrders,
		TotalSpent:  r.TotalSpent,
	}
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewCustomerResponse(c entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		TotalOrders: c.TotalOrders,
		TotalSpent:  c.TotalSpent,
		CreatedAt:   c.CreatedAt,
	}
}

func NewCustomerResponses(cs []entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewCustomerResponse(c))
	}
	return out
}
