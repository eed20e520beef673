// Package xlsx exporta el reporte de inventario a una hoja de cálculo con excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/application/ports"
)

// Nombres de hoja del libro exportado.
const (
	SheetSummary    = "Resumen"
	SheetCategories = "Categorias"
	SheetLowStock   = "Stock bajo"
	SheetTop        = "Top productos"
)

var _ ports.ReportRenderer = (*ReportRenderer)(nil)

// ReportRenderer implementa ports.ReportRenderer en formato xlsx.
type ReportRenderer struct{}

// NewReportRenderer construye el renderer.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

func (r *ReportRenderer) Format() string { return "xlsx" }

func (r *ReportRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render arma un libro con una hoja por sección del reporte.
func (r *ReportRenderer) Render(_ context.Context, rep *dto.InventoryReportDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	summary := [][]interface{}{
		{"Indicador", "Valor"},
		{"Generado", rep.GeneratedAt},
		{"Productos", rep.TotalProducts},
		{"Valor del inventario", rep.InventoryValue.InexactFloat64()},
		{"Productos con stock bajo", rep.LowStockItems},
		{"Ingresos (ventas)", rep.TotalRevenue.InexactFloat64()},
		{"Compras", rep.TotalPurchases.InexactFloat64()},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return nil, err
	}

	categories := [][]interface{}{{"Categoría", "Productos", "Unidades", "Valor"}}
	for _, c := range rep.CategoryAnalysis {
		categories = append(categories, []interface{}{c.Category, c.Products, c.Units, c.InventoryValue.InexactFloat64()})
	}
	if err := addSheet(f, SheetCategories, categories); err != nil {
		return nil, err
	}
	if err := addSheet(f, SheetLowStock, productRows(rep.LowStockProducts)); err != nil {
		return nil, err
	}
	if err := addSheet(f, SheetTop, productRows(rep.TopProducts)); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func productRows(ps []dto.ProductResponse) [][]interface{} {
	rows := [][]interface{}{{"SKU", "Producto", "Categoría", "Cantidad", "Punto de reorden", "Costo", "Precio"}}
	for _, p := range ps {
		rows = append(rows, []interface{}{
			p.SKU, p.Name, p.Category, p.Quantity, p.ReorderPoint,
			p.Cost.InexactFloat64(), p.Price.InexactFloat64(),
		})
	}
	return rows
}

func addSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("xlsx: crear hoja %q: %w", name, err)
	}
	return writeRows(f, name, rows)
}

// writeRows escribe las filas desde A1 hacia abajo.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d de %q: %w", i+1, sheet, err)
		}
	}
	return nil
}
