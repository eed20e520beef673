package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-admin/internal/application/dto"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "$0,00",
		"999.5":    "$999,50",
		"12210":    "$12.210,00",
		"4619.73":  "$4.619,73",
		"1000000":  "$1.000.000,00",
		"-1500.25": "-$1.500,25",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestReportRenderer_Render(t *testing.T) {
	rep := &dto.InventoryReportDTO{
		GeneratedAt:    "2024-03-05T08:00:00Z",
		InventoryValue: decimal.NewFromInt(9150),
		TotalProducts:  3,
		CategoryAnalysis: []dto.CategoryAnalysisDTO{
			{Category: "Electronics", Products: 3, Units: 85, InventoryValue: decimal.NewFromInt(9150)},
		},
		TopProducts: []dto.ProductResponse{{SKU: "PROD001", Name: "Wireless Headphones", Quantity: 45, ReorderPoint: 10}},
	}

	r := NewReportRenderer("")
	assert.Equal(t, "pdf", r.Format())
	assert.Equal(t, "application/pdf", r.ContentType())

	data, err := r.Render(context.Background(), rep)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
