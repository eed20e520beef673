package inventory_test

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-admin/internal/application/inventory"
	"github.com/jhoicas/inventory-admin/internal/domain"
	"github.com/jhoicas/inventory-admin/internal/domain/entity"
)

var fixedNow = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

func newDemo() *inventory.InventoryService {
	return inventory.NewInventoryService(
		inventory.NewSequenceGenerator(100),
		func() time.Time { return fixedNow },
		inventory.DemoSnapshot(),
	)
}

func newEmpty() *inventory.InventoryService {
	return inventory.NewInventoryService(
		inventory.NewSequenceGenerator(0),
		func() time.Time { return fixedNow },
		inventory.EmptySnapshot(),
	)
}

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ids[T any](xs []T, id func(T) string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, id(x))
	}
	return out
}

func productID(p entity.Product) string { return p.ID }

func TestDemoSnapshot_Colecciones(t *testing.T) {
	s := newDemo()
	assert.Len(t, s.Products(), 3)
	assert.Len(t, s.Suppliers(), 2)
	assert.Len(t, s.Customers(), 2)
	assert.Len(t, s.PurchaseOrders(), 1)
	assert.Len(t, s.SalesOrders(), 1)
	assert.Len(t, s.StockOperations(inventory.StockOperationFilter{}), 3)
}

func TestAddProduct_AsignaIDYFechas(t *testing.T) {
	s := newDemo()
	p := s.AddProduct(entity.Product{
		ID: "ignored", SKU: "PROD004", Name: "USB Hub", Category: "Accessories",
		Price: dec("25"), Cost: dec("10"), Quantity: 7, ReorderPoint: 5,
	})

	assert.Equal(t, "101", p.ID)
	assert.Equal(t, fixedNow, p.CreatedAt)
	assert.Equal(t, fixedNow, p.UpdatedAt)

	all := s.Products()
	require.Len(t, all, 4)
	assert.Equal(t, p, all[3], "se agrega al final")
}

func TestAdd_IDsUnicos(t *testing.T) {
	s := inventory.NewInventoryService(nil, nil, inventory.EmptySnapshot())
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p := s.AddProduct(entity.Product{Name: "x"})
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestUpdateProduct_MergeParcial(t *testing.T) {
	s := newDemo()
	before, ok := s.GetProduct("2")
	require.True(t, ok)

	updated, ok := s.UpdateProduct("2", inventory.ProductPatch{Quantity: ptr(40)})
	require.True(t, ok)
	assert.Equal(t, 40, updated.Quantity)
	assert.Equal(t, before.Name, updated.Name)
	assert.True(t, before.Price.Equal(updated.Price))
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)
	assert.Equal(t, fixedNow, updated.UpdatedAt)

	got, _ := s.GetProduct("2")
	assert.Equal(t, updated, got)
}

func TestUpdateDelete_IDDesconocidoEsNoop(t *testing.T) {
	s := newDemo()
	before := s.Products()

	_, ok := s.UpdateProduct("999", inventory.ProductPatch{Name: ptr("x")})
	assert.False(t, ok)
	assert.False(t, s.DeleteProduct("999"))
	assert.Equal(t, before, s.Products())

	_, ok = s.UpdateSupplier("999", inventory.SupplierPatch{Name: ptr("x")})
	assert.False(t, ok)
	assert.False(t, s.DeleteSupplier("999"))
	_, ok = s.UpdateCustomer("999", inventory.CustomerPatch{Name: ptr("x")})
	assert.False(t, ok)
	assert.False(t, s.DeleteCustomer("999"))
	_, ok = s.UpdatePurchaseOrder("999", inventory.PurchaseOrderPatch{})
	assert.False(t, ok)
	assert.False(t, s.DeletePurchaseOrder("999"))
	_, ok = s.UpdateSalesOrder("999", inventory.SalesOrderPatch{})
	assert.False(t, ok)
	assert.False(t, s.DeleteSalesOrder("999"))

	assert.Len(t, s.Suppliers(), 2)
	assert.Len(t, s.Customers(), 2)
	assert.Len(t, s.PurchaseOrders(), 1)
	assert.Len(t, s.SalesOrders(), 1)
}

func TestDeleteProduct_SinCascada(t *testing.T) {
	s := newDemo()
	require.True(t, s.DeleteProduct("1"))

	assert.Equal(t, []string{"2", "3"}, ids(s.Products(), productID))
	_, ok := s.GetProduct("1")
	assert.False(t, ok)

	// las órdenes siguen referenciando el producto borrado
	so := s.SalesOrders()[0]
	assert.Equal(t, "1", so.Items[0].ProductID)
	assert.Equal(t, "Wireless Headphones", so.Items[0].ProductName)
}

func TestDeleteSupplier_OrdenConservaNombre(t *testing.T) {
	s := newDemo()
	require.True(t, s.DeleteSupplier("1"))
	assert.Equal(t, "TechSupplier Inc", s.PurchaseOrders()[0].SupplierName)
}

func TestSupplierCustomer_AddUpdate(t *testing.T) {
	s := newEmpty()
	sup := s.AddSupplier(entity.Supplier{Name: "Parts Co", Email: "a@parts.co", Rating: 4.1})
	assert.Equal(t, "1", sup.ID)
	assert.Equal(t, fixedNow, sup.CreatedAt)

	sup2, ok := s.UpdateSupplier(sup.ID, inventory.SupplierPatch{Rating: ptr(4.9), TotalOrders: ptr(3)})
	require.True(t, ok)
	assert.Equal(t, 4.9, sup2.Rating)
	assert.Equal(t, 3, sup2.TotalOrders)
	assert.Equal(t, "Parts Co", sup2.Name)

	c := s.AddCustomer(entity.Customer{Name: "Beta LLC", TotalSpent: dec("10")})
	c2, ok := s.UpdateCustomer(c.ID, inventory.CustomerPatch{TotalSpent: ptr(dec("20.50"))})
	require.True(t, ok)
	assert.True(t, c2.TotalSpent.Equal(dec("20.50")))
	assert.Equal(t, "Beta LLC", c2.Name)
	got, ok := s.GetCustomer(c.ID)
	require.True(t, ok)
	assert.Equal(t, c2, got)
}

func TestAddPurchaseOrder_CalculaTotales(t *testing.T) {
	s := newDemo()
	po := s.AddPurchaseOrder(entity.PurchaseOrder{
		PONumber: "PO-2024-002", SupplierID: "2", SupplierName: "AudioTech Ltd",
		Items: []entity.OrderItem{
			{ProductID: "3", ProductName: "Bluetooth Speaker", Quantity: 25, UnitPrice: dec("45")},
			{ProductID: "1", ProductName: "Wireless Headphones", Quantity: 2, UnitPrice: dec("150.50"), Total: dec("1")},
		},
		Tax:    dec("142.60"),
		Status: entity.PurchaseOrderDraft,
	})

	assert.True(t, po.Items[0].Total.Equal(dec("1125")))
	assert.True(t, po.Items[1].Total.Equal(dec("301")), "el total de línea se recalcula")
	assert.True(t, po.Subtotal.Equal(dec("1426")))
	assert.True(t, po.Total.Equal(dec("1568.60")))
	assert.Equal(t, fixedNow, po.OrderDate)
	assert.Nil(t, po.ReceivedDate)
}

func TestUpdatePurchaseOrder_EstadoSinValidarTransicion(t *testing.T) {
	s := newDemo()
	po, ok := s.UpdatePurchaseOrder("1", inventory.PurchaseOrderPatch{Status: ptr(entity.PurchaseOrderDraft)})
	require.True(t, ok)
	assert.Equal(t, entity.PurchaseOrderDraft, po.Status)
	assert.True(t, po.Total.Equal(dec("12210")), "sin cambios de líneas no se recalcula")
}

func TestUpdateSalesOrder_RecalculaConItems(t *testing.T) {
	s := newDemo()
	items := []entity.OrderItem{{ProductID: "2", ProductName: "Smart Watch", Quantity: 2, UnitPrice: dec("199.99")}}
	so, ok := s.UpdateSalesOrder("1", inventory.SalesOrderPatch{Items: &items, Tax: ptr(dec("40"))})
	require.True(t, ok)
	assert.True(t, so.Subtotal.Equal(dec("399.98")))
	assert.True(t, so.Total.Equal(dec("439.98")))
	assert.Equal(t, "Acme Corporation", so.CustomerName)

	delivered := fixedNow
	so, ok = s.UpdateSalesOrder("1", inventory.SalesOrderPatch{
		Status:       ptr(entity.SalesOrderDelivered),
		DeliveryDate: &delivered,
	})
	require.True(t, ok)
	assert.Equal(t, entity.SalesOrderDelivered, so.Status)
	require.NotNil(t, so.DeliveryDate)
	assert.Equal(t, fixedNow, *so.DeliveryDate)
}

func TestLecturasDevuelvenCopias(t *testing.T) {
	s := newDemo()
	orders := s.SalesOrders()
	orders[0].Items[0].Quantity = 999
	products := s.Products()
	products[0].Name = "changed"

	assert.Equal(t, 10, s.SalesOrders()[0].Items[0].Quantity)
	assert.Equal(t, "Wireless Headphones", s.Products()[0].Name)
}

func TestGetLowStockProducts(t *testing.T) {
	s := newDemo()
	assert.Equal(t, []string{"2"}, ids(s.GetLowStockProducts(), productID))

	// igual al punto de reorden cuenta como bajo
	s.UpdateProduct("3", inventory.ProductPatch{Quantity: ptr(20)})
	assert.Equal(t, []string{"2", "3"}, ids(s.GetLowStockProducts(), productID))

	s.UpdateProduct("2", inventory.ProductPatch{Quantity: ptr(16)})
	assert.Equal(t, []string{"3"}, ids(s.GetLowStockProducts(), productID))

	assert.Empty(t, newEmpty().GetLowStockProducts())
}

func TestGetInventoryValue(t *testing.T) {
	s := newDemo()
	// 150*45 + 120*8 + 45*32
	assert.True(t, s.GetInventoryValue().Equal(dec("9150")), s.GetInventoryValue().String())

	s.UpdateProduct("1", inventory.ProductPatch{Cost: ptr(dec("0.10")), Quantity: ptr(3)})
	assert.True(t, s.GetInventoryValue().Equal(dec("2400.30")))

	assert.True(t, newEmpty().GetInventoryValue().IsZero())
}

func TestGetInventoryValue_AgregarSumaCostoPorCantidad(t *testing.T) {
	s := newDemo()
	before := s.GetInventoryValue()
	s.AddProduct(entity.Product{Name: "Nuevo", Cost: dec("10"), Quantity: 5})
	assert.True(t, s.GetInventoryValue().Sub(before).Equal(dec("50")))
}

func TestGetTopSellingProducts_CantidadesExtremas(t *testing.T) {
	s := newEmpty()
	for _, q := range []int{math.MinInt, math.MaxInt, 0} {
		s.AddProduct(entity.Product{Quantity: q})
	}
	top := s.GetTopSellingProducts()
	require.Len(t, top, 3)
	assert.Equal(t, []int{math.MaxInt, 0, math.MinInt}, []int{top[0].Quantity, top[1].Quantity, top[2].Quantity})
}

func TestGetTopSellingProducts_OrdenEstableYLimite(t *testing.T) {
	s := newEmpty()
	for i, q := range []int{5, 9, 5, 1, 9, 7, 3} {
		s.AddProduct(entity.Product{Name: string(rune('A' + i)), Quantity: q})
	}
	// ids asignados 1..7 con cantidades 5,9,5,1,9,7,3
	top := s.GetTopSellingProducts()
	require.Len(t, top, 5)
	assert.Equal(t, []string{"2", "5", "6", "1", "3"}, ids(top, productID))

	demo := newDemo()
	assert.Equal(t, []string{"1", "3", "2"}, ids(demo.GetTopSellingProducts(), productID))
	assert.Empty(t, newEmpty().GetTopSellingProducts())
}

func TestSearchProducts(t *testing.T) {
	s := newDemo()
	s.AddProduct(entity.Product{SKU: "ACC-1", Name: "Cable", Category: "Accessories", Quantity: 1, ReorderPoint: 5})

	assert.Equal(t, []string{"1"}, ids(s.SearchProducts(inventory.ProductFilter{Term: "WIRELESS"}), productID))
	assert.Equal(t, []string{"3"}, ids(s.SearchProducts(inventory.ProductFilter{Term: "prod003"}), productID))
	assert.Equal(t, []string{"101"}, ids(s.SearchProducts(inventory.ProductFilter{Category: "Accessories"}), productID))
	assert.Equal(t, []string{"2", "101"}, ids(s.SearchProducts(inventory.ProductFilter{LowStockOnly: true}), productID))
	assert.Len(t, s.SearchProducts(inventory.ProductFilter{}), 4)
	assert.Empty(t, s.SearchProducts(inventory.ProductFilter{Term: "nothing"}))

	assert.Equal(t, []string{"Electronics", "Accessories"}, s.Categories())
}

func TestSearchSuppliersCustomers(t *testing.T) {
	s := newDemo()
	assert.Len(t, s.SearchSuppliers("sarah"), 1)
	assert.Len(t, s.SearchSuppliers("TECHSUPPLIER.COM"), 1)
	assert.Len(t, s.SearchSuppliers(""), 2)
	assert.Len(t, s.SearchCustomers("acme"), 1)
	assert.Len(t, s.SearchCustomers("globalretail"), 1)
	assert.Empty(t, s.SearchCustomers("+1-555"), "el teléfono no participa en la búsqueda")
}

func TestStockOperations_Filtro(t *testing.T) {
	s := newDemo()
	assert.Len(t, s.StockOperations(inventory.StockOperationFilter{Type: entity.StockOpTransfer}), 1)
	assert.Len(t, s.StockOperations(inventory.StockOperationFilter{Term: "audit"}), 1)
	assert.Len(t, s.StockOperations(inventory.StockOperationFilter{Term: "speaker", Type: entity.StockOpIssue}), 0)
}

func TestRecordStockOperation(t *testing.T) {
	s := newDemo()

	op, err := s.RecordStockOperation(inventory.StockOperationInput{
		Type: entity.StockOpReceive, ProductID: "2", Quantity: 12, Reason: "PO", PerformedBy: "Admin User",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StockOpApproved, op.Status)
	assert.Equal(t, "Smart Watch", op.ProductName)
	assert.Equal(t, fixedNow, op.Date)
	p, _ := s.GetProduct("2")
	assert.Equal(t, 20, p.Quantity)

	_, err = s.RecordStockOperation(inventory.StockOperationInput{Type: entity.StockOpIssue, ProductID: "2", Quantity: 5})
	require.NoError(t, err)
	_, err = s.RecordStockOperation(inventory.StockOperationInput{Type: entity.StockOpAdjustment, ProductID: "2", Quantity: -3})
	require.NoError(t, err)
	p, _ = s.GetProduct("2")
	assert.Equal(t, 12, p.Quantity)

	_, err = s.RecordStockOperation(inventory.StockOperationInput{
		Type: entity.StockOpTransfer, ProductID: "2", Quantity: 4, FromLocation: "A", ToLocation: "B",
	})
	require.NoError(t, err)
	p, _ = s.GetProduct("2")
	assert.Equal(t, 12, p.Quantity, "transfer no cambia el total")
	assert.Len(t, s.StockOperations(inventory.StockOperationFilter{}), 7)
}

func TestRecordStockOperation_CostoPromedioEnEntrada(t *testing.T) {
	s := newDemo()
	cost := dec("110.00")
	_, err := s.RecordStockOperation(inventory.StockOperationInput{
		Type: entity.StockOpReceive, ProductID: "2", Quantity: 12, Reason: "PO", UnitCost: &cost,
	})
	require.NoError(t, err)
	p, _ := s.GetProduct("2")
	assert.Equal(t, 20, p.Quantity)
	assert.True(t, dec("114").Equal(p.Cost), "(8*120 + 12*110) / 20")

	_, err = s.RecordStockOperation(inventory.StockOperationInput{
		Type: entity.StockOpIssue, ProductID: "2", Quantity: 1, Reason: "venta", UnitCost: &cost,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el costo solo aplica a entradas")
}

func TestRecordStockOperation_Errores(t *testing.T) {
	s := newDemo()
	cases := []struct {
		name string
		in   inventory.StockOperationInput
		want error
	}{
		{"tipo desconocido", inventory.StockOperationInput{Type: "teleport", ProductID: "1", Quantity: 1}, domain.ErrInvalidInput},
		{"cantidad cero", inventory.StockOperationInput{Type: entity.StockOpReceive, ProductID: "1"}, domain.ErrInvalidInput},
		{"ajuste cero", inventory.StockOperationInput{Type: entity.StockOpAdjustment, ProductID: "1"}, domain.ErrInvalidInput},
		{"transfer misma ubicación", inventory.StockOperationInput{Type: entity.StockOpTransfer, ProductID: "1", Quantity: 1, FromLocation: "A", ToLocation: "A"}, domain.ErrInvalidInput},
		{"producto inexistente", inventory.StockOperationInput{Type: entity.StockOpReceive, ProductID: "999", Quantity: 1}, domain.ErrNotFound},
		{"salida mayor al stock", inventory.StockOperationInput{Type: entity.StockOpIssue, ProductID: "2", Quantity: 9}, domain.ErrInsufficientStock},
		{"ajuste bajo cero", inventory.StockOperationInput{Type: entity.StockOpAdjustment, ProductID: "2", Quantity: -9}, domain.ErrInsufficientStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.RecordStockOperation(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	p, _ := s.GetProduct("2")
	assert.Equal(t, 8, p.Quantity)
	assert.Len(t, s.StockOperations(inventory.StockOperationFilter{}), 3)
}

func TestInventoryService_Concurrente(t *testing.T) {
	s := newEmpty()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.AddProduct(entity.Product{Name: "p", Cost: dec("1"), Quantity: 1})
		}()
		go func() {
			defer wg.Done()
			_ = s.GetInventoryValue()
			_ = s.GetTopSellingProducts()
		}()
	}
	wg.Wait()
	assert.Len(t, s.Products(), 20)
	assert.True(t, s.GetInventoryValue().Equal(dec("20")))
}
