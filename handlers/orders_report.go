package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"printshop/services"
)

// HandleOrdersReportExcel returns a handler that downloads the consolidated
// orders report as an Excel workbook.
func HandleOrdersReportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		orders, err := app.FindRecordsByFilter("orders", activeFilter, "-created", 0, 0, nil)
		if err != nil {
			log.Printf("orders_report: query failed: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "No se pudo consultar las órdenes.")
		}

		rows := make([]services.OrdersReportRow, 0, len(orders))
		for _, o := range orders {
			rows = append(rows, services.OrdersReportRow{
				ID:        o.Id,
				Customer:  resolveCustomerName(app, o.GetString("customer")),
				Store:     resolveRecordName(app, "stores", o.GetString("store")),
				Status:    resolveRecordName(app, "order_statuses", o.GetString("status")),
				Total:     o.GetFloat("final_amount"),
				CreatedAt: o.GetDateTime("created").Time().Format("02/01/2006 15:04"),
			})
		}

		xlsxBytes, err := services.GenerateOrdersReport(rows)
		if err != nil {
			log.Printf("orders_report: failed to generate excel: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "No se pudo generar el reporte.")
		}

		filename := fmt.Sprintf("reporte_ordenes_%s.xlsx", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// resolveCustomerName renders a customer relation as a display name, business
// name for juridical customers and full name otherwise.
func resolveCustomerName(app *pocketbase.PocketBase, id string) string {
	if id == "" {
		return "Cliente no especificado"
	}
	r, err := app.FindRecordById("customers", id)
	if err != nil {
		return "Cliente no especificado"
	}
	if r.GetString("entity_type") == "J" {
		return r.GetString("business_name")
	}
	name := r.GetString("name")
	if last := r.GetString("last_name"); last != "" {
		name += " " + last
	}
	return name
}

func resolveRecordName(app *pocketbase.PocketBase, collection, id string) string {
	if id == "" {
		return ""
	}
	r, err := app.FindRecordById(collection, id)
	if err != nil {
		return ""
	}
	return r.GetString("name")
}
