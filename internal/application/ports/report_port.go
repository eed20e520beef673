package ports

import (
	"context"

	"github.com/jhoicas/inventory-admin/internal/application/dto"
)

// ReportRenderer define el puerto de salida para exportar el reporte de inventario.
// Cada adaptador (xlsx, pdf) produce un formato.
type ReportRenderer interface {
	// Format nombre corto del formato, usado en ?format= (ej: "xlsx").
	Format() string
	// ContentType tipo MIME del documento generado.
	ContentType() string
	// Render genera el documento y devuelve sus bytes.
	Render(ctx context.Context, report *dto.InventoryReportDTO) ([]byte, error)
}
