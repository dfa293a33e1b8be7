package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the catalog, customer and order
// collections exist. Soft-deletable collections carry a deleted_at date field;
// records with a non-empty value are invisible to the handlers.
func Setup(app *pocketbase.PocketBase) {
	typeClients := ensureCollection(app, "type_clients", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	customers := ensureCollection(app, "customers", func(c *core.Collection) {
		c.Fields.Add(&core.SelectField{
			Name:      "entity_type",
			Required:  true,
			Values:    []string{"N", "J"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: false})
		c.Fields.Add(&core.TextField{Name: "last_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "business_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "dni", Required: false})
		c.Fields.Add(&core.TextField{Name: "ruc", Required: false})
		c.Fields.Add(&core.TextField{Name: "doc_foreign", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone_number", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:         "type_client",
			Required:     false,
			CollectionId: typeClients.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.DateField{Name: "deleted_at", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	productTypes := ensureCollection(app, "product_types", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	products := ensureCollection(app, "products", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "sku", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.TextField{Name: "image", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:         "product_type",
			Required:     false,
			CollectionId: productTypes.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.DateField{Name: "deleted_at", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "extra_options", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.DateField{Name: "deleted_at", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	stores := ensureCollection(app, "stores", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "code", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone_number_secondary", Required: false})
		c.Fields.Add(&core.TextField{Name: "yape_phone_number", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "bcp_cta", Required: false})
		c.Fields.Add(&core.TextField{Name: "bcp_cci", Required: false})
		c.Fields.Add(&core.DateField{Name: "deleted_at", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	orderStatuses := ensureCollection(app, "order_statuses", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	orders := ensureCollection(app, "orders", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "customer",
			Required:     false,
			CollectionId: customers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "store",
			Required:     true,
			CollectionId: stores.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "status",
			Required:     true,
			CollectionId: orderStatuses.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "total_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "profit_margin", Required: false})
		c.Fields.Add(&core.NumberField{Name: "discount_applied", Required: false})
		c.Fields.Add(&core.NumberField{Name: "final_amount", Required: false})
		c.Fields.Add(&core.TextField{Name: "payment_method", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.DateField{Name: "deleted_at", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "order_details", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "order",
			Required:      true,
			CollectionId:  orders.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "product",
			Required:     true,
			CollectionId: products.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: true})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: true})
		c.Fields.Add(&core.NumberField{Name: "height", Required: false})
		c.Fields.Add(&core.NumberField{Name: "width", Required: false})
		c.Fields.Add(&core.NumberField{Name: "linear_meter", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_extra_options", Required: false})
		c.Fields.Add(&core.NumberField{Name: "subtotal", Required: false})
		c.Fields.Add(&core.JSONField{Name: "extra_options", Required: false})
		c.Fields.Add(&core.DateField{Name: "deleted_at", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
