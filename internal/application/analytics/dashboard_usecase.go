package analytics

import (
	"context"

	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

const dashboardRecentOrders = 5 // órdenes de venta en el widget "recientes"

// DashboardUseCase genera el resumen de la vista principal.
type DashboardUseCase struct {
	store InventoryReader
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store InventoryReader) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// GetSummary arma los KPIs. "Recientes" son las primeras órdenes de la colección,
// sin ordenar por fecha.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lowStock := uc.store.GetLowStockProducts()

	pending := 0
	for _, po := range uc.store.PurchaseOrders() {
		if po.Status == entity.PurchaseOrderSent {
			pending++
		}
	}

	sales := uc.store.SalesOrders()
	if len(sales) > dashboardRecentOrders {
		sales = sales[:dashboardRecentOrders]
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:     len(uc.store.Products()),
		InventoryValue:    uc.store.GetInventoryValue(),
		LowStockCount:     len(lowStock),
		ActiveCustomers:   len(uc.store.Customers()),
		PendingOrders:     pending,
		LowStockProducts:  dto.NewProductResponses(lowStock),
		RecentSalesOrders: dto.NewSalesOrderResponses(sales),
		TopProducts:       dto.NewProductResponses(uc.store.GetTopSellingProducts()),
	}, nil
}
