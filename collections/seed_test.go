package collections_test

import (
	"testing"

	"printshop/collections"
	"printshop/testhelpers"
)

func TestSeed_PopulatesCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	stores, err := app.FindAllRecords("stores")
	if err != nil || len(stores) != 1 {
		t.Fatalf("expected 1 seeded store, got %d (err %v)", len(stores), err)
	}
	if stores[0].GetString("code") != "LCV-01" {
		t.Errorf("store code = %q, want LCV-01", stores[0].GetString("code"))
	}

	statuses, err := app.FindAllRecords("order_statuses")
	if err != nil || len(statuses) == 0 {
		t.Fatalf("expected seeded order statuses, got %d (err %v)", len(statuses), err)
	}

	products, err := app.FindAllRecords("products")
	if err != nil || len(products) == 0 {
		t.Fatalf("expected seeded products, got %d (err %v)", len(products), err)
	}

	extras, err := app.FindAllRecords("extra_options")
	if err != nil || len(extras) == 0 {
		t.Fatalf("expected seeded extra options, got %d (err %v)", len(extras), err)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed failed: %v", err)
	}
	first, _ := app.FindAllRecords("products")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	second, _ := app.FindAllRecords("products")

	if len(first) != len(second) {
		t.Errorf("Seed is not idempotent: %d products, then %d", len(first), len(second))
	}
}
