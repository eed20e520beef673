package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-admin/internal/application/inventory"
	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

// ProductQuery filtros de GET /api/products. La paginación va aparte en PageRequest.
type ProductQuery struct {
	Q        string `query:"q"`
	Category string `query:"category"`
	LowStock bool   `query:"low_stock"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=100"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Description  string          `json:"description"`
	Category     string          `json:"category" validate:"max=100"`
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	Cost         decimal.Decimal `json:"cost" validate:"gte=0"`
	Quantity     int             `json:"quantity" validate:"gte=0"`
	ReorderPoint int             `json:"reorder_point" validate:"gte=0"`
	Supplier     string          `json:"supplier"`
	Barcode      string          `json:"barcode"`
	ImageURL     string          `json:"image_url" validate:"omitempty,url"`
}

// ToEntity construye el producto a agregar; id y fechas las asigna el servicio.
func (r CreateProductRequest) ToEntity() entity.Product {
	return entity.Product{
		SKU:          r.SKU,
		Name:         r.Name,
		Description:  r.Description,
		Category:     r.Category,
		Price:        r.Price,
		Cost:         r.Cost,
		Quantity:     r.Quantity,
		ReorderPoint: r.ReorderPoint,
		Supplier:     r.Supplier,
		Barcode:      r.Barcode,
		ImageURL:     r.ImageURL,
	}
}

// UpdateProductRequest actualización parcial; solo se aplican los campos presentes.
type UpdateProductRequest struct {
	SKU          *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	Category     *string          `json:"category" validate:"omitempty,max=100"`
	Price        *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Cost         *decimal.Decimal `json:"cost" validate:"omitempty,gte=0"`
	Quantity     *int             `json:"quantity" validate:"omitempty,gte=0"`
	ReorderPoint *int             `json:"reorder_point" validate:"omitempty,gte=0"`
	Supplier     *string          `json:"supplier"`
	Barcode      *string          `json:"barcode"`
	ImageURL     *string          `json:"image_url" validate:"omitempty,url"`
}

// ToPatch convierte la petición en el patch del servicio.
func (r UpdateProductRequest) ToPatch() inventory.ProductPatch {
	return inventory.ProductPatch{
		SKU:          r.SKU,
		Name:         r.Name,
		Description:  r.Description,
		Category:     r.Category,
		Price:        r.Price,
		Cost:         r.Cost,
		Quantity:     r.Quantity,
		ReorderPoint: r.ReorderPoint,
		Supplier:     r.Supplier,
		Barcode:      r.Barcode,
		ImageURL:     r.ImageURL,
	}
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Quantity     int             `json:"quantity"`
	ReorderPoint int             `json:"reorder_point"`
	LowStock     bool            `json:"low_stock"`
	Supplier     string          `json:"supplier"`
	Barcode      string          `json:"barcode"`
	ImageURL     string          `json:"image_url,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewProductResponse mapea la entidad a su salida HTTP.
func NewProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Price:        p.Price,
		Cost:         p.Cost,
		Quantity:     p.Quantity,
		ReorderPoint: p.ReorderPoint,
		LowStock:     p.IsLowStock(),
		Supplier:     p.Supplier,
		Barcode:      p.Barcode,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewProductResponses mapea una lista de productos.
func NewProductResponses(ps []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProductResponse(p))
	}
	return out
}
