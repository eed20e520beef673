package xlsx_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/infrastructure/xlsx"
)

func TestReportRenderer_Render(t *testing.T) {
	rep := &dto.InventoryReportDTO{
		GeneratedAt:    "2024-03-05T08:00:00Z",
		InventoryValue: decimal.NewFromInt(9150),
		TotalProducts:  3,
		LowStockItems:  1,
		TotalRevenue:   decimal.RequireFromString("4619.73"),
		TotalPurchases: decimal.NewFromInt(12210),
		CategoryAnalysis: []dto.CategoryAnalysisDTO{
			{Category: "Electronics", Products: 3, Units: 85, InventoryValue: decimal.NewFromInt(9150)},
		},
		LowStockProducts: []dto.ProductResponse{
			{SKU: "PROD002", Name: "Smart Watch", Category: "Electronics", Quantity: 8, ReorderPoint: 15},
		},
	}

	r := xlsx.NewReportRenderer()
	assert.Equal(t, "xlsx", r.Format())
	data, err := r.Render(context.Background(), rep)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{xlsx.SheetSummary, xlsx.SheetCategories, xlsx.SheetLowStock, xlsx.SheetTop}, f.GetSheetList())

	rows, err := f.GetRows(xlsx.SheetSummary)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"Productos", "3"}, rows[2])

	cats, err := f.GetRows(xlsx.SheetCategories)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Electronics", cats[1][0])
	assert.Equal(t, "85", cats[1][2])

	low, err := f.GetRows(xlsx.SheetLowStock)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Smart Watch", low[1][1])

	top, err := f.GetRows(xlsx.SheetTop)
	require.NoError(t, err)
	assert.Len(t, top, 1, "solo encabezado")
}
