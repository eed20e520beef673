package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-admin/internal/application/inventory"
	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

// OrderItemRequest línea de una orden. El total de línea lo calcula el servicio.
type OrderItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	ProductName string          `json:"product_name" validate:"required"`
	Quantity    int             `json:"quantity" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

// OrderItemResponse línea de una orden con su total.
type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

func toItems(in []OrderItemRequest) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		out = append(out, entity.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return out
}

func toItemsPtr(in *[]OrderItemRequest) *[]entity.OrderItem {
	if in == nil {
		return nil
	}
	items := toItems(*in)
	return &items
}

func newItemResponses(items []entity.OrderItem) []OrderItemResponse {
	out := make([]OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return out
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	PONumber     string             `json:"po_number" validate:"required,max=50"`
	SupplierID   string             `json:"supplier_id" validate:"required"`
	SupplierName string             `json:"supplier_name" validate:"required"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Tax          decimal.Decimal    `json:"tax" validate:"gte=0"`
	Status       string             `json:"status" validate:"omitempty,oneof=draft sent received cancelled"`
	OrderDate    *time.Time         `json:"order_date"`
	ExpectedDate time.Time          `json:"expected_date"`
}

func (r CreatePurchaseOrderRequest) ToEntity() entity.PurchaseOrder {
	po := entity.PurchaseOrder{
		PONumber:     r.PONumber,
		SupplierID:   r.SupplierID,
		SupplierName: r.SupplierName,
		Items:        toItems(r.Items),
		Tax:          r.Tax,
		Status:       entity.PurchaseOrderStatus(r.Status),
		ExpectedDate: r.ExpectedDate,
	}
	if po.Status == "" {
		po.Status = entity.PurchaseOrderDraft
	}
	if r.OrderDate != nil {
		po.OrderDate = *r.OrderDate
	}
	return po
}

// UpdatePurchaseOrderRequest actualización parcial. Cambiar items o tax recalcula los totales.
type UpdatePurchaseOrderRequest struct {
	PONumber     *string             `json:"po_number" validate:"omitempty,max=50"`
	SupplierID   *string             `json:"supplier_id"`
	SupplierName *string             `json:"supplier_name"`
	Items        *[]OrderItemRequest `json:"items" validate:"omitempty,min=1,dive"`
	Tax          *decimal.Decimal    `json:"tax" validate:"omitempty,gte=0"`
	Status       *string             `json:"status" validate:"omitempty,oneof=draft sent received cancelled"`
	OrderDate    *time.Time          `json:"order_date"`
	ExpectedDate *time.Time          `json:"expected_date"`
	ReceivedDate *time.Time          `json:"received_date"`
}

func (r UpdatePurchaseOrderRequest) ToPatch() inventory.PurchaseOrderPatch {
	p := inventory.PurchaseOrderPatch{
		PONumber:     r.PONumber,
		SupplierID:   r.SupplierID,
		SupplierName: r.SupplierName,
		Items:        toItemsPtr(r.Items),
		Tax:          r.Tax,
		OrderDate:    r.OrderDate,
		ExpectedDate: r.ExpectedDate,
		ReceivedDate: r.ReceivedDate,
	}
	if r.Status != nil {
		st := entity.PurchaseOrderStatus(*r.Status)
		p.Status = &st
	}
	return p
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID           string              `json:"id"`
	PONumber     string              `json:"po_number"`
	SupplierID   string              `json:"supplier_id"`
	SupplierName string              `json:"supplier_name"`
	Items        []OrderItemResponse `json:"items"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Tax          decimal.Decimal     `json:"tax"`
	Total        decimal.Decimal     `json:"total"`
	Status       string              `json:"status"`
	OrderDate    time.Time           `json:"order_date"`
	ExpectedDate time.Time           `json:"expected_date"`
	ReceivedDate *time.Time          `json:"received_date,omitempty"`
}

func NewPurchaseOrderResponse(po entity.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:           po.ID,
		PONumber:     po.PONumber,
		SupplierID:   po.SupplierID,
		SupplierName: po.SupplierName,
		Items:        newItemResponses(po.Items),
		Subtotal:     po.Subtotal,
		Tax:          po.Tax,
		Total:        po.Total,
		Status:       string(po.Status),
		OrderDate:    po.OrderDate,
		ExpectedDate: po.ExpectedDate,
		ReceivedDate: po.ReceivedDate,
	}
}

func NewPurchaseOrderResponses(pos []entity.PurchaseOrder) []PurchaseOrderResponse {
	out := make([]PurchaseOrderResponse, 0, len(pos))
	for _, po := range pos {
		out = append(out, NewPurchaseOrderResponse(po))
	}
	return out
}

// CreateSalesOrderRequest entrada para crear una orden de venta.
type CreateSalesOrderRequest struct {
	OrderNumber  string             `json:"order_number" validate:"required,max=50"`
	CustomerID   string             `json:"customer_id" validate:"required"`
	CustomerName string             `json:"customer_name" validate:"required"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Tax          decimal.Decimal    `json:"tax" validate:"gte=0"`
	Status       string             `json:"status" validate:"omitempty,oneof=draft confirmed shipped delivered cancelled"`
	OrderDate    *time.Time         `json:"order_date"`
}

func (r CreateSalesOrderRequest) ToEntity() entity.SalesOrder {
	so := entity.SalesOrder{
		OrderNumber:  r.OrderNumber,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Items:        toItems(r.Items),
		Tax:          r.Tax,
		Status:       entity.SalesOrderStatus(r.Status),
	}
	if so.Status == "" {
		so.Status = entity.SalesOrderDraft
	}
	if r.OrderDate != nil {
		so.OrderDate = *r.OrderDate
	}
	return so
}

// UpdateSalesOrderRequest actualización parcial de una orden de venta.
type UpdateSalesOrderRequest struct {
	OrderNumber  *string             `json:"order_number" validate:"omitempty,max=50"`
	CustomerID   *string             `json:"customer_id"`
	CustomerName *string             `json:"customer_name"`
	Items        *[]OrderItemRequest `json:"items" validate:"omitempty,min=1,dive"`
	Tax          *decimal.Decimal    `json:"tax" validate:"omitempty,gte=0"`
	Status       *string             `json:"status" validate:"omitempty,oneof=draft confirmed shipped delivered cancelled"`
	OrderDate    *time.Time          `json:"order_date"`
	DeliveryDate *time.Time          `json:"delivery_date"`
}

func (r UpdateSalesOrderRequest) ToPatch() inventory.SalesOrderPatch {
	p := inventory.SalesOrderPatch{
		OrderNumber:  r.OrderNumber,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Items:        toItemsPtr(r.Items),
		Tax:          r.Tax,
		OrderDate:    r.OrderDate,
		DeliveryDate: r.DeliveryDate,
	}
	if r.Status != nil {
		st := entity.SalesOrderStatus(*r.Status)
		p.Status = &st
	}
	return p
}

// SalesOrderResponse salida de una orden de venta.
type SalesOrderResponse struct {
	ID           string              `json:"id"`
	OrderNumber  string              `json:"order_number"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	Items        []OrderItemResponse `json:"items"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Tax          decimal.Decimal     `json:"tax"`
	Total        decimal.Decimal     `json:"total"`
	Status       string              `json:"status"`
	OrderDate    time.Time           `json:"order_date"`
	DeliveryDate *time.Time          `json:"delivery_date,omitempty"`
}

func NewSalesOrderResponse(so entity.SalesOrder) SalesOrderResponse {
	return SalesOrderResponse{
		ID:           so.ID,
		OrderNumber:  so.OrderNumber,
		CustomerID:   so.CustomerID,
		CustomerName: so.CustomerName,
		Items:        newItemResponses(so.Items),
		Subtotal:     so.Subtotal,
		Tax:          so.Tax,
		Total:        so.Total,
		Status:       string(so.Status),
		OrderDate:    so.OrderDate,
		DeliveryDate: so.DeliveryDate,
	}
}

func NewSalesOrderResponses(sos []entity.SalesOrder) []SalesOrderResponse {
	out := make([]SalesOrderResponse, 0, len(sos))
	for _, so := range sos {
		out = append(out, NewSalesOrderResponse(so))
	}
	return out
}
