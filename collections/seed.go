package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type productDef struct {
	sku         string
	name        string
	description string
	price       float64
	productType string
}

type extraOptionDef struct {
	name  string
	price float64
}

// Seed populates the catalog collections with the shop's standing data. It is
// safe to call on every startup because it returns early once a store exists.
func Seed(app *pocketbase.PocketBase) error {
	storesCol, err := app.FindCollectionByNameOrId("stores")
	if err != nil {
		return fmt.Errorf("seed: could not find stores collection: %w", err)
	}
	existing, err := app.FindAllRecords(storesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query stores: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: stores collection is empty – inserting seed data …")

	statusesCol, err := app.FindCollectionByNameOrId("order_statuses")
	if err != nil {
		return fmt.Errorf("seed: could not find order_statuses collection: %w", err)
	}
	typeClientsCol, err := app.FindCollectionByNameOrId("type_clients")
	if err != nil {
		return fmt.Errorf("seed: could not find type_clients collection: %w", err)
	}
	productTypesCol, err := app.FindCollectionByNameOrId("product_types")
	if err != nil {
		return fmt.Errorf("seed: could not find product_types collection: %w", err)
	}
	productsCol, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}
	extraOptionsCol, err := app.FindCollectionByNameOrId("extra_options")
	if err != nil {
		return fmt.Errorf("seed: could not find extra_options collection: %w", err)
	}

	// ── order statuses ───────────────────────────────────────────────
	for _, name := range []string{"Pendiente", "En Producción", "Terminado", "Entregado", "Anulado"} {
		r := core.NewRecord(statusesCol)
		r.Set("name", name)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save order status %q: %w", name, err)
		}
	}

	// ── client types ─────────────────────────────────────────────────
	for _, name := range []string{"Minorista", "Mayorista", "Corporativo"} {
		r := core.NewRecord(typeClientsCol)
		r.Set("name", name)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save type_client %q: %w", name, err)
		}
	}

	// ── product types ────────────────────────────────────────────────
	typeIDs := map[string]string{}
	for _, name := range []string{"Gigantografía", "Impresión", "Acabados"} {
		r := core.NewRecord(productTypesCol)
		r.Set("name", name)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save product_type %q: %w", name, err)
		}
		typeIDs[name] = r.Id
	}

	// ── default store ────────────────────────────────────────────────
	store := core.NewRecord(storesCol)
	store.Set("code", "LCV-01")
	store.Set("name", "Laser Color Veloz")
	store.Set("address", "C.C. Guizado Record Plaza, Stand 194, Jr. Huaraz 1717, Breña")
	store.Set("phone_number", "987654321")
	store.Set("phone_number_secondary", "912345678")
	store.Set("yape_phone_number", "987654321")
	store.Set("email", "ventas@lasercolorveloz.com")
	store.Set("bcp_cta", "191-12345678-0-99")
	store.Set("bcp_cci", "00219111234567809912")
	if err := app.Save(store); err != nil {
		return fmt.Errorf("seed: save store: %w", err)
	}

	// ── products ─────────────────────────────────────────────────────
	products := []productDef{
		{sku: "GIG-BAN", name: "Banner 13 onzas", description: "Impresión en banner de 13 oz, tinta solvente", price: 25, productType: "Gigantografía"},
		{sku: "GIG-VIN", name: "Vinil Adhesivo", description: "Vinil adhesivo brillante o mate", price: 35, productType: "Gigantografía"},
		{sku: "GIG-MIC", name: "Microperforado", description: "Vinil microperforado para lunas", price: 45, productType: "Gigantografía"},
		{sku: "IMP-TAR", name: "Tarjetas Personales", description: "Millar de tarjetas en couché 300 gr", price: 60, productType: "Impresión"},
		{sku: "IMP-VOL", name: "Volantes A5", description: "Millar de volantes full color", price: 90, productType: "Impresión"},
		{sku: "IMP-STI", name: "Stickers Troquelados", description: "Ciento de stickers en vinil troquelado", price: 50, productType: "Impresión"},
		{sku: "ACA-OJA", name: "Ojales", description: "Colocación de ojales metálicos", price: 1.5, productType: "Acabados"},
		{sku: "ACA-SEL", name: "Sellado Termosellado", description: "Sellado de bordes para banner", price: 5, productType: "Acabados"},
	}
	for _, p := range products {
		r := core.NewRecord(productsCol)
		r.Set("sku", p.sku)
		r.Set("name", p.name)
		r.Set("description", p.description)
		r.Set("price", p.price)
		r.Set("product_type", typeIDs[p.productType])
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save product %q: %w", p.name, err)
		}
	}

	// ── extra options ────────────────────────────────────────────────
	extras := []extraOptionDef{
		{name: "Tubos y colgadores", price: 10},
		{name: "Pita para colgar", price: 3},
		{name: "Ojales reforzados", price: 2},
		{name: "Laminado mate", price: 15},
		{name: "Laminado brillante", price: 15},
		{name: "Corte a medida", price: 8},
		{name: "Diseño gráfico", price: 30},
		{name: "Instalación", price: 50},
	}
	for _, e := range extras {
		r := core.NewRecord(extraOptionsCol)
		r.Set("name", e.name)
		r.Set("price", e.price)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save extra option %q: %w", e.name, err)
		}
	}

	log.Println("seed: catalog seed data inserted successfully (1 store, 8 products, 8 extras)")
	return nil
}
