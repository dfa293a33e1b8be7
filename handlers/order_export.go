package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"printshop/services"
)

type orderExportPayload struct {
	Items []services.DisplayLineItem `json:"items"`
}

// HandleOrderExportPDF returns a handler that generates and downloads the
// quotation PDF for an order. The request body carries the display items the
// frontend cart rendered, already priced and annotated.
func HandleOrderExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, ok := requirePathID(e)
		if !ok {
			return nil
		}

		order, err := app.FindRecordById("orders", id)
		if err != nil || order.GetString("deleted_at") != "" {
			return errorJSON(e, http.StatusNotFound, "Orden no encontrada.")
		}

		var payload orderExportPayload
		if err := e.BindBody(&payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		}

		data, err := services.BuildQuoteExportData(app, id, payload.Items)
		if err != nil {
			log.Printf("order_export: failed to build data for %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "No se pudo preparar los datos de la orden.")
		}

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("order_export: failed to generate PDF for %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "No se pudo generar el PDF.")
		}

		filename := fmt.Sprintf("orden_%s.pdf", sanitizeFilename(id))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
