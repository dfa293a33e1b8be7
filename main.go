package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"printshop/collections"
	"printshop/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Customers ────────────────────────────────────────────
		se.Router.GET("/customers", handlers.HandleCustomerList(app))
		se.Router.POST("/customers", handlers.HandleCustomerCreate(app))
		se.Router.PUT("/customers/{id}", handlers.HandleCustomerUpdate(app))
		se.Router.DELETE("/customers/{id}", handlers.HandleCustomerDelete(app))

		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/products", handlers.HandleProductList(app))
		se.Router.POST("/products", handlers.HandleProductCreate(app))
		se.Router.PUT("/products/{id}", handlers.HandleProductUpdate(app))
		se.Router.DELETE("/products/{id}", handlers.HandleProductDelete(app))

		se.Router.GET("/extra-options", handlers.HandleExtraOptionList(app))
		se.Router.POST("/extra-options", handlers.HandleExtraOptionCreate(app))
		se.Router.PUT("/extra-options/{id}", handlers.HandleExtraOptionUpdate(app))
		se.Router.DELETE("/extra-options/{id}", handlers.HandleExtraOptionDelete(app))

		// ── Stores ───────────────────────────────────────────────
		se.Router.GET("/stores", handlers.HandleStoreList(app))
		se.Router.POST("/stores", handlers.HandleStoreCreate(app))
		se.Router.PUT("/stores/{id}", handlers.HandleStoreUpdate(app))
		se.Router.DELETE("/stores/{id}", handlers.HandleStoreDelete(app))

		// ── Lookups ──────────────────────────────────────────────
		se.Router.GET("/type-clients", handlers.HandleTypeClientList(app))
		se.Router.POST("/type-clients", handlers.HandleTypeClientCreate(app))
		se.Router.GET("/order-statuses", handlers.HandleOrderStatusList(app))
		se.Router.POST("/order-statuses", handlers.HandleOrderStatusCreate(app))

		// ── Orders ───────────────────────────────────────────────
		// Report route must be before /orders/{id} to avoid matching
		// "report" as an ID.
		se.Router.GET("/orders/report/excel", handlers.HandleOrdersReportExcel(app))

		se.Router.GET("/orders", handlers.HandleOrderList(app))
		se.Router.POST("/orders", handlers.HandleOrderCreate(app))
		se.Router.GET("/orders/{id}", handlers.HandleOrderView(app))
		se.Router.PATCH("/orders/{id}/status", handlers.HandleOrderStatusPatch(app))
		se.Router.DELETE("/orders/{id}", handlers.HandleOrderDelete(app))

		// ── Quotation PDF ────────────────────────────────────────
		se.Router.POST("/orders/{id}/pdf", handlers.HandleOrderExportPDF(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
