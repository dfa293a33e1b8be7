// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"printshop/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestStore creates a store record with the given code and returns it.
func CreateTestStore(t *testing.T, app *pocketbase.PocketBase, code, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("stores")
	if err != nil {
		t.Fatalf("failed to find stores collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("code", code)
	record.Set("name", name)
	record.Set("phone_number", "987654321")
	record.Set("yape_phone_number", "987654321")
	record.Set("email", "ventas@example.com")
	record.Set("bcp_cta", "191-12345678-0-99")
	record.Set("bcp_cci", "00219111234567809912")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test store: %v", err)
	}

	return record
}

// CreateTestCustomer creates a natural-person customer record and returns it.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name, dni string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("entity_type", "N")
	record.Set("name", name)
	record.Set("last_name", "Quispe")
	record.Set("dni", dni)
	record.Set("phone_number", "912345678")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestOrderStatus creates an order status record and returns it.
func CreateTestOrderStatus(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("order_statuses")
	if err != nil {
		t.Fatalf("failed to find order_statuses collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test order status: %v", err)
	}

	return record
}

// CreateTestProduct creates a product record and returns it.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, sku, name string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("failed to find products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("sku", sku)
	record.Set("name", name)
	record.Set("price", price)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}

// CreateTestOrder creates an order with the given monetary fields and returns it.
func CreateTestOrder(t *testing.T, app *pocketbase.PocketBase, customerID, storeID, statusID string, totalAmount, finalAmount float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("orders")
	if err != nil {
		t.Fatalf("failed to find orders collection: %v", err)
	}

	record := core.NewRecord(col)
	if customerID != "" {
		record.Set("customer", customerID)
	}
	record.Set("store", storeID)
	record.Set("status", statusID)
	record.Set("total_amount", totalAmount)
	record.Set("final_amount", finalAmount)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test order: %v", err)
	}

	return record
}

// CreateTestOrderDetail creates an order detail row and returns it.
func CreateTestOrderDetail(t *testing.T, app *pocketbase.PocketBase, orderID, productID string, quantity, unitPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("order_details")
	if err != nil {
		t.Fatalf("failed to find order_details collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("order", orderID)
	record.Set("product", productID)
	record.Set("quantity", quantity)
	record.Set("unit_price", unitPrice)
	record.Set("subtotal", quantity*unitPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test order detail: %v", err)
	}

	return record
}
