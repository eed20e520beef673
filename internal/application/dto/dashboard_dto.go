package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts     int                  `json:"total_products"`
	InventoryValue    decimal.Decimal      `json:"inventory_value"` // Σ costo × cantidad
	LowStockCount     int                  `json:"low_stock_count"`
	ActiveCustomers   int                  `json:"active_customers"`
	PendingOrders     int                  `json:"pending_purchase_orders"` // órdenes de compra en estado "sent"
	LowStockProducts  []ProductResponse    `json:"low_stock_products"`
	RecentSalesOrders []SalesOrderResponse `json:"recent_sales_orders"` // primeras 5 de la colección
	TopProducts       []ProductResponse    `json:"top_products"`        // por existencias, no por ventas
}

// CategoryAnalysisDTO productos y valor por categoría.
type CategoryAnalysisDTO struct {
	Category       string          `json:"category"`
	Products       int             `json:"products"`
	Units          int             `json:"units"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

// InventoryReportDTO respuesta de GET /api/reports/summary y base de las exportaciones.
type InventoryReportDTO struct {
	GeneratedAt      string                `json:"generated_at"` // RFC3339
	InventoryValue   decimal.Decimal       `json:"inventory_value"`
	TotalProducts    int                   `json:"total_products"`
	LowStockItems    int                   `json:"low_stock_items"`
	TotalRevenue     decimal.Decimal       `json:"total_revenue"`   // Σ totales de órdenes de venta
	TotalPurchases   decimal.Decimal       `json:"total_purchases"` // Σ totales de órdenes de compra
	CategoryAnalysis []CategoryAnalysisDTO `json:"category_analysis"`
	TopProducts      []ProductResponse     `json:"top_products"`
	LowStockProducts []ProductResponse     `json:"low_stock_products"`
}
