package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-admin/internal/application/analytics"
	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/application/inventory"
	"github.com/jhoicas/inventory-admin/internal/domain"
	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

var reportNow = time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)

func demoStore() *inventory.InventoryService {
	return inventory.NewInventoryService(inventory.NewSequenceGenerator(100), func() time.Time { return reportNow }, inventory.DemoSnapshot())
}

type fakeRenderer struct {
	format string
	got    *dto.InventoryReportDTO
	err    error
}

func (f *fakeRenderer) Format() string      { return f.format }
func (f *fakeRenderer) ContentType() string { return "application/x-test" }
func (f *fakeRenderer) Render(_ context.Context, r *dto.InventoryReportDTO) ([]byte, error) {
	f.got = r
	if f.err != nil {
		return nil, f.err
	}
	return []byte("doc"), nil
}

func TestDashboard_GetSummary(t *testing.T) {
	store := demoStore()
	store.AddPurchaseOrder(entity.PurchaseOrder{PONumber: "PO-2", Status: entity.PurchaseOrderSent, Tax: decimal.Zero})

	sum, err := analytics.NewDashboardUseCase(store).GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, sum.TotalProducts)
	assert.True(t, sum.InventoryValue.Equal(decimal.NewFromInt(9150)))
	assert.Equal(t, 1, sum.LowStockCount)
	assert.Equal(t, 2, sum.ActiveCustomers)
	assert.Equal(t, 1, sum.PendingOrders)
	require.Len(t, sum.RecentSalesOrders, 1)
	assert.Equal(t, "SO-2024-001", sum.RecentSalesOrders[0].OrderNumber)
	require.Len(t, sum.TopProducts, 3)
	assert.Equal(t, "Wireless Headphones", sum.TopProducts[0].Name)
}

func TestDashboard_RecientesLimitadas(t *testing.T) {
	store := demoStore()
	for i := 0; i < 7; i++ {
		store.AddSalesOrder(entity.SalesOrder{OrderNumber: "SO-X"})
	}
	sum, err := analytics.NewDashboardUseCase(store).GetSummary(context.Background())
	require.NoError(t, err)
	assert.Len(t, sum.RecentSalesOrders, 5)
	assert.Equal(t, "SO-2024-001", sum.RecentSalesOrders[0].OrderNumber)
}

func TestReport_GetReport(t *testing.T) {
	store := demoStore()
	store.AddProduct(entity.Product{Name: "Cable", Category: "Accessories", Cost: decimal.NewFromInt(2), Quantity: 10, ReorderPoint: 1})

	rep, err := analytics.NewReportUseCase(store, func() time.Time { return reportNow }).GetReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05T08:00:00Z", rep.GeneratedAt)
	assert.Equal(t, 4, rep.TotalProducts)
	assert.Equal(t, 1, rep.LowStockItems)
	assert.True(t, rep.InventoryValue.Equal(decimal.NewFromInt(9170)))
	assert.True(t, rep.TotalRevenue.Equal(decimal.RequireFromString("4619.73")))
	assert.True(t, rep.TotalPurchases.Equal(decimal.NewFromInt(12210)))

	require.Len(t, rep.CategoryAnalysis, 2)
	assert.Equal(t, "Accessories", rep.CategoryAnalysis[0].Category)
	assert.Equal(t, 1, rep.CategoryAnalysis[0].Products)
	assert.Equal(t, "Electronics", rep.CategoryAnalysis[1].Category)
	assert.Equal(t, 3, rep.CategoryAnalysis[1].Products)
	assert.Equal(t, 85, rep.CategoryAnalysis[1].Units)
}

func TestReport_Export(t *testing.T) {
	r := &fakeRenderer{format: "xlsx"}
	uc := analytics.NewReportUseCase(demoStore(), func() time.Time { return reportNow }, r)

	out, err := uc.Export(context.Background(), " XLSX ")
	require.NoError(t, err)
	assert.Equal(t, "inventory-report-20240305.xlsx", out.Filename)
	assert.Equal(t, "application/x-test", out.ContentType)
	assert.Equal(t, []byte("doc"), out.Data)
	require.NotNil(t, r.got)
	assert.Equal(t, 3, r.got.TotalProducts)
	assert.Equal(t, []string{"xlsx"}, uc.Formats())
}

func TestReport_ExportErrores(t *testing.T) {
	boom := errors.New("boom")
	uc := analytics.NewReportUseCase(demoStore(), nil, &fakeRenderer{format: "pdf", err: boom})

	_, err := uc.Export(context.Background(), "csv")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	_, err = uc.Export(context.Background(), "pdf")
	assert.ErrorIs(t, err, boom)
}
