package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-admin/internal/application/analytics"
	"github.com/jhoicas/inventory-admin/internal/application/auth"
	"github.com/jhoicas/inventory-admin/internal/application/inventory"
	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Inventory   *inventory.InventoryService
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *analytics.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	protected.Get("/users", RequirePermission(entity.PermissionAll), authHandler.ListUsers)

	// Products; las rutas fijas van antes de /:id
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Inventory)
	read, write := RequirePermission(entity.PermProductsRead), RequirePermission(entity.PermProductsWrite)
	products.Get("/", read, productHandler.List)
	products.Get("/low-stock", read, productHandler.LowStock)
	products.Get("/top", read, productHandler.Top)
	products.Get("/categories", read, productHandler.Categories)
	products.Get("/:id", read, productHandler.GetByID)
	products.Post("/", write, productHandler.Create)
	products.Put("/:id", write, productHandler.Update)
	products.Delete("/:id", write, productHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.Inventory)
	read, write = RequirePermission(entity.PermSuppliersRead), RequirePermission(entity.PermSuppliersWrite)
	suppliers.Get("/", read, supplierHandler.List)
	suppliers.Get("/:id", read, supplierHandler.GetByID)
	suppliers.Post("/", write, supplierHandler.Create)
	suppliers.Put("/:id", write, supplierHandler.Update)
	suppliers.Delete("/:id", write, supplierHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.Inventory)
	read, write = RequirePermission(entity.PermCustomersRead), RequirePermission(entity.PermCustomersWrite)
	customers.Get("/", read, customerHandler.List)
	customers.Get("/:id", read, customerHandler.GetByID)
	customers.Post("/", write, customerHandler.Create)
	customers.Put("/:id", write, customerHandler.Update)
	customers.Delete("/:id", write, customerHandler.Delete)

	// Órdenes de compra y venta
	orderHandler := NewOrderHandler(deps.Inventory)
	read, write = RequirePermission(entity.PermOrdersRead), RequirePermission(entity.PermOrdersWrite)
	purchases := protected.Group("/purchase-orders")
	purchases.Get("/", read, orderHandler.ListPurchaseOrders)
	purchases.Get("/:id", read, orderHandler.GetPurchaseOrder)
	purchases.Post("/", write, orderHandler.CreatePurchaseOrder)
	purchases.Put("/:id", write, orderHandler.UpdatePurchaseOrder)
	purchases.Delete("/:id", write, orderHandler.DeletePurchaseOrder)
	sales := protected.Group("/sales-orders")
	sales.Get("/", read, orderHandler.ListSalesOrders)
	sales.Get("/:id", read, orderHandler.GetSalesOrder)
	sales.Post("/", write, orderHandler.CreateSalesOrder)
	sales.Put("/:id", write, orderHandler.UpdateSalesOrder)
	sales.Delete("/:id", write, orderHandler.DeleteSalesOrder)

	// Stock
	stockHandler := NewStockHandler(deps.Inventory)
	protected.Get("/stock/operations", RequirePermission(entity.PermStockRead), stockHandler.ListOperations)
	protected.Post("/stock/operations", RequirePermission(entity.PermStockWrite), stockHandler.RecordOperation)

	// Dashboard y reportes
	reportHandler := NewReportHandler(deps.DashboardUC, deps.ReportUC)
	protected.Get("/dashboard/summary", reportHandler.Dashboard)
	reports := protected.Group("/reports", RequirePermission(entity.PermReportsRead))
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/export", reportHandler.Export)
}
