package services

import (
	"testing"

	"printshop/testhelpers"
)

func TestBuildQuoteExportData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	store := testhelpers.CreateTestStore(t, app, "LCV-01", "Laser Color Veloz")
	customer := testhelpers.CreateTestCustomer(t, app, "María", "45678912")
	status := testhelpers.CreateTestOrderStatus(t, app, "Pendiente")
	order := testhelpers.CreateTestOrder(t, app, customer.Id, store.Id, status.Id, 200, 236)

	items := []DisplayLineItem{
		{ProductID: 20, SKU: "IMP-TAR", Name: "Tarjetas Personales", Quantity: 2, Price: 60, Subtotal: 120},
	}

	data, err := BuildQuoteExportData(app, order.Id, items)
	if err != nil {
		t.Fatalf("BuildQuoteExportData failed: %v", err)
	}

	if data.Order.ID != order.Id {
		t.Errorf("Order.ID = %q, want %q", data.Order.ID, order.Id)
	}
	if data.Order.TotalAmount != 200 || data.Order.FinalAmount != 236 {
		t.Errorf("unexpected monetary fields: %+v", data.Order)
	}
	if data.Order.Customer == nil {
		t.Fatal("expected customer snapshot")
	}
	if data.Order.Customer.Name != "María" || data.Order.Customer.DNI != "45678912" {
		t.Errorf("unexpected customer snapshot: %+v", data.Order.Customer)
	}
	if data.Order.Store.Name != "Laser Color Veloz" {
		t.Errorf("unexpected store snapshot: %+v", data.Order.Store)
	}
	if data.Order.Status != "Pendiente" {
		t.Errorf("Status = %q, want Pendiente", data.Order.Status)
	}
	if len(data.Items) != 1 || data.Items[0].SKU != "IMP-TAR" {
		t.Errorf("display items were not carried through: %+v", data.Items)
	}
	if data.GeneratedAt.IsZero() {
		t.Error("GeneratedAt should be stamped")
	}
}

func TestBuildQuoteExportDataMissingOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, err := BuildQuoteExportData(app, "does-not-exist", nil); err == nil {
		t.Fatal("expected an error for a missing order")
	}
}

func TestBuildQuoteExportDataNoCustomer(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	store := testhelpers.CreateTestStore(t, app, "LCV-01", "Laser Color Veloz")
	status := testhelpers.CreateTestOrderStatus(t, app, "Pendiente")
	order := testhelpers.CreateTestOrder(t, app, "", store.Id, status.Id, 50, 59)

	data, err := BuildQuoteExportData(app, order.Id, nil)
	if err != nil {
		t.Fatalf("BuildQuoteExportData failed: %v", err)
	}
	if data.Order.Customer != nil {
		t.Errorf("expected nil customer snapshot, got %+v", data.Order.Customer)
	}
}
