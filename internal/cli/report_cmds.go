package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-admin/internal/application/analytics"
	"github.com/jhoicas/inventory-admin/internal/application/dto"
	"github.com/jhoicas/inventory-admin/internal/application/inventory"
	"github.com/jhoicas/inventory-admin/internal/domain/entity"
	infrapdf "github.com/jhoicas/inventory-admin/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/inventory-admin/internal/infrastructure/xlsx"
)

// reports arma el caso de uso sobre un inventario nuevo; el inventario no se persiste entre invocaciones.
func (a *app) reports() *analytics.ReportUseCase {
	seed := inventory.EmptySnapshot()
	if a.cfg.Inventory.Seed {
		seed = inventory.DemoSnapshot()
	}
	store := inventory.NewInventoryService(nil, time.Now, seed)
	return analytics.NewReportUseCase(store, time.Now,
		infraxlsx.NewReportRenderer(),
		infrapdf.NewReportRenderer(""),
	)
}

func newReportCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Muestra el reporte de inventario",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.require(entity.PermReportsRead); err != nil {
				return err
			}
			rep, err := a.reports().GetReport(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			return printReport(cmd, rep)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "salida en JSON")
	return cmd
}

func printReport(cmd *cobra.Command, rep *dto.InventoryReportDTO) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Reporte de inventario\t%s\n", rep.GeneratedAt)
	fmt.Fprintf(w, "Valor del inventario\t%s\n", rep.InventoryValue.StringFixed(2))
	fmt.Fprintf(w, "Productos\t%d\n", rep.TotalProducts)
	fmt.Fprintf(w, "Stock bajo\t%d\n", rep.LowStockItems)
	fmt.Fprintf(w, "Ingresos por ventas\t%s\n", rep.TotalRevenue.StringFixed(2))
	fmt.Fprintf(w, "Compras\t%s\n", rep.TotalPurchases.StringFixed(2))

	fmt.Fprintln(w, "\nCATEGORÍA\tPRODUCTOS\tUNIDADES\tVALOR")
	for _, c := range rep.CategoryAnalysis {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", c.Category, c.Products, c.Units, c.InventoryValue.StringFixed(2))
	}
	if len(rep.LowStockProducts) > 0 {
		fmt.Fprintln(w, "\nSTOCK BAJO\tSKU\tCANTIDAD\tREORDEN")
		for _, p := range rep.LowStockProducts {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", p.Name, p.SKU, p.Quantity, p.ReorderPoint)
		}
	}
	return w.Flush()
}

func newExportCmd(a *app) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta el reporte de inventario a xlsx o pdf",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.require(entity.PermReportsRead); err != nil {
				return err
			}
			res, err := a.reports().Export(cmd.Context(), format)
			if err != nil {
				return err
			}
			if out == "" {
				out = res.Filename
			}
			if err := os.WriteFile(out, res.Data, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reporte exportado en %s (%d bytes)\n", out, len(res.Data))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "xlsx", "formato: xlsx | pdf")
	cmd.Flags().StringVar(&out, "out", "", "archivo de salida (por defecto inventory-report-AAAAMMDD.<formato>)")
	return cmd
}
