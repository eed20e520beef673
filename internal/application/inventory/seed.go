package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func tsPtr(s string) *time.Time {
	t := ts(s)
	return &t
}

// DemoSnapshot datos de demostración con los que arranca el panel.
func DemoSnapshot() Snapshot {
	return Snapshot{
		Products: []entity.Product{
			{
				ID: "1", SKU: "PROD001", Name: "Wireless Headphones",
				Description: "Premium wireless headphones with noise cancellation",
				Category:    "Electronics", Price: money("299.99"), Cost: money("150.00"),
				Quantity: 45, ReorderPoint: 10, Supplier: "TechSupplier Inc", Barcode: "1234567890123",
				ImageURL:  "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=300",
				CreatedAt: ts("2024-01-15T10:30:00Z"), UpdatedAt: ts("2024-01-15T10:30:00Z"),
			},
			{
				ID: "2", SKU: "PROD002", Name: "Smart Watch",
				Description: "Fitness tracking smartwatch with heart rate monitor",
				Category:    "Electronics", Price: money("199.99"), Cost: money("120.00"),
				Quantity: 8, ReorderPoint: 15, Supplier: "TechSupplier Inc", Barcode: "2345678901234",
				ImageURL:  "https://images.pexels.com/photos/393047/pexels-photo-393047.jpeg?auto=compress&cs=tinysrgb&w=300",
				CreatedAt: ts("2024-01-16T09:15:00Z"), UpdatedAt: ts("2024-01-16T09:15:00Z"),
			},
			{
				ID: "3", SKU: "PROD003", Name: "Bluetooth Speaker",
				Description: "Portable waterproof bluetooth speaker",
				Category:    "Electronics", Price: money("79.99"), Cost: money("45.00"),
				Quantity: 32, ReorderPoint: 20, Supplier: "AudioTech Ltd", Barcode: "3456789012345",
				ImageURL:  "https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg?auto=compress&cs=tinysrgb&w=300",
				CreatedAt: ts("2024-01-17T14:20:00Z"), UpdatedAt: ts("2024-01-17T14:20:00Z"),
			},
		},
		Suppliers: []entity.Supplier{
			{
				ID: "1", Name: "TechSupplier Inc", Contact: "John Smith", Email: "john@techsupplier.com",
				Phone: "+1-555-0123", Address: "123 Tech Street, Silicon Valley, CA 94043",
				Rating: 4.8, TotalOrders: 145, OnTimeDelivery: 96.5, CreatedAt: ts("2023-06-15T08:30:00Z"),
			},
			{
				ID: "2", Name: "AudioTech Ltd", Contact: "Sarah Johnson", Email: "sarah@audiotech.com",
				Phone: "+1-555-0124", Address: "456 Audio Avenue, Nashville, TN 37203",
				Rating: 4.6, TotalOrders: 78, OnTimeDelivery: 94.2, CreatedAt: ts("2023-07-20T11:45:00Z"),
			},
		},
		Customers: []entity.Customer{
			{
				ID: "1", Name: "Acme Corporation", Email: "orders@acme.com", Phone: "+1-555-0200",
				Address: "789 Business Blvd, New York, NY 10001", TotalOrders: 23,
				TotalSpent: money("15750.50"), CreatedAt: ts("2023-08-10T16:20:00Z"),
			},
			{
				ID: "2", Name: "Global Retail Chain", Email: "purchasing@globalretail.com", Phone: "+1-555-0201",
				Address: "321 Retail Road, Chicago, IL 60601", TotalOrders: 41,
				TotalSpent: money("28900.75"), CreatedAt: ts("2023-09-05T12:10:00Z"),
			},
		},
		PurchaseOrders: []entity.PurchaseOrder{
			{
				ID: "1", PONumber: "PO-2024-001", SupplierID: "1", SupplierName: "TechSupplier Inc",
				Items: []entity.OrderItem{
					{ProductID: "1", ProductName: "Wireless Headphones", Quantity: 50, UnitPrice: money("150.00"), Total: money("7500.00")},
					{ProductID: "2", ProductName: "Smart Watch", Quantity: 30, UnitPrice: money("120.00"), Total: money("3600.00")},
				},
				Subtotal: money("11100.00"), Tax: money("1110.00"), Total: money("12210.00"),
				Status:       entity.PurchaseOrderReceived,
				OrderDate:    ts("2024-01-10T09:00:00Z"),
				ExpectedDate: ts("2024-01-20T09:00:00Z"),
				ReceivedDate: tsPtr("2024-01-18T14:30:00Z"),
			},
		},
		SalesOrders: []entity.SalesOrder{
			{
				ID: "1", OrderNumber: "SO-2024-001", CustomerID: "1", CustomerName: "Acme Corporation",
				Items: []entity.OrderItem{
					{ProductID: "1", ProductName: "Wireless Headphones", Quantity: 10, UnitPrice: money("299.99"), Total: money("2999.90")},
					{ProductID: "3", ProductName: "Bluetooth Speaker", Quantity: 15, UnitPrice: money("79.99"), Total: money("1199.85")},
				},
				Subtotal: money("4199.75"), Tax: money("419.98"), Total: money("4619.73"),
				Status:       entity.SalesOrderShipped,
				OrderDate:    ts("2024-01-12T11:30:00Z"),
				DeliveryDate: tsPtr("2024-01-15T16:00:00Z"),
			},
		},
		StockOperations: []entity.StockOperation{
			{
				ID: "1", Type: entity.StockOpAdjustment, ProductID: "2", ProductName: "Smart Watch", Quantity: -2,
				Reason: "Damaged items found during audit", PerformedBy: "John Smith",
				Date: ts("2024-01-18T10:30:00Z"), Status: entity.StockOpApproved,
			},
			{
				ID: "2", Type: entity.StockOpTransfer, ProductID: "1", ProductName: "Wireless Headphones", Quantity: 10,
				FromLocation: "Warehouse A", ToLocation: "Warehouse B",
				Reason: "Stock rebalancing", PerformedBy: "Sarah Johnson",
				Date: ts("2024-01-17T14:15:00Z"), Status: entity.StockOpApproved,
			},
			{
				ID: "3", Type: entity.StockOpReceive, ProductID: "3", ProductName: "Bluetooth Speaker", Quantity: 25,
				Reason: "Purchase order PO-2024-002 received", PerformedBy: "Mike Wilson",
				Date: ts("2024-01-16T09:45:00Z"), Status: entity.StockOpApproved,
			},
		},
	}
}

// EmptySnapshot almacén sin datos.
func EmptySnapshot() Snapshot { return Snapshot{} }
