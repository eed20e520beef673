package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/application/ports"
	"github.com/jhoicas/inventory-admin/internal/domain"
)

// ExportResult documento exportado listo para enviar.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportUseCase genera el reporte de inventario y lo exporta con los renderers registrados.
type ReportUseCase struct {
	store     InventoryReader
	now       func() time.Time
	renderers map[string]ports.ReportRenderer
}

// NewReportUseCase construye el caso de uso. clock puede ser nil.
func NewReportUseCase(store InventoryReader, clock func() time.Time, renderers ...ports.ReportRenderer) *ReportUseCase {
	if clock == nil {
		clock = time.Now
	}
	byFormat := make(map[string]ports.ReportRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &ReportUseCase{store: store, now: clock, renderers: byFormat}
}

// Formats formatos de exportación disponibles, ordenados.
func (uc *ReportUseCase) Formats() []string {
	out := make([]string, 0, len(uc.renderers))
	for f := range uc.renderers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// GetReport calcula el reporte completo a partir del estado actual del almacén.
func (uc *ReportUseCase) GetReport(ctx context.Context) (*dto.InventoryReportDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	products := uc.store.Products()
	lowStock := uc.store.GetLowStockProducts()

	revenue := decimal.Zero
	for _, so := range uc.store.SalesOrders() {
		revenue = revenue.Add(so.Total)
	}
	purchases := decimal.Zero
	for _, po := range uc.store.PurchaseOrders() {
		purchases = purchases.Add(po.Total)
	}

	byCategory := make(map[string]*dto.CategoryAnalysisDTO)
	for _, p := range products {
		c, ok := byCategory[p.Category]
		if !ok {
			c = &dto.CategoryAnalysisDTO{Category: p.Category, InventoryValue: decimal.Zero}
			byCategory[p.Category] = c
		}
		c.Products++
		c.Units += p.Quantity
		c.InventoryValue = c.InventoryValue.Add(p.StockValue())
	}
	categories := make([]dto.CategoryAnalysisDTO, 0, len(byCategory))
	for _, c := range byCategory {
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Category < categories[j].Category })

	return &dto.InventoryReportDTO{
		GeneratedAt:      uc.now().UTC().Format(time.RFC3339),
		InventoryValue:   uc.store.GetInventoryValue(),
		TotalProducts:    len(products),
		LowStockItems:    len(lowStock),
		TotalRevenue:     revenue,
		TotalPurchases:   purchases,
		CategoryAnalysis: categories,
		TopProducts:      dto.NewProductResponses(uc.store.GetTopSellingProducts()),
		LowStockProducts: dto.NewProductResponses(lowStock),
	}, nil
}

// Export genera el reporte y lo renderiza en el formato pedido.
// Formato desconocido: domain.ErrUnsupportedFormat.
func (uc *ReportUseCase) Export(ctx context.Context, format string) (*ExportResult, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	report, err := uc.GetReport(ctx)
	if err != nil {
		return nil, err
	}
	data, err := renderer.Render(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("exportar reporte %s: %w", format, err)
	}
	return &ExportResult{
		Filename:    fmt.Sprintf("inventory-report-%s.%s", uc.now().UTC().Format("20060102"), format),
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}
