package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type orderDetailPayload struct {
	Product           string           `json:"product"`
	Quantity          float64          `json:"quantity"`
	UnitPrice         float64          `json:"unit_price"`
	Height            float64          `json:"height"`
	Width             float64          `json:"width"`
	LinearMeter       float64          `json:"linear_meter"`
	TotalExtraOptions float64          `json:"total_extra_options"`
	ExtraOptions      []map[string]any `json:"extra_options"`
}

type orderPayload struct {
	Customer        string               `json:"customer"`
	Store           string               `json:"store"`
	Status          string               `json:"status"`
	ProfitMargin    float64              `json:"profit_margin"`
	DiscountApplied float64              `json:"discount_applied"`
	PaymentMethod   string               `json:"payment_method"`
	Notes           string               `json:"notes"`
	Details         []orderDetailPayload `json:"details"`
}

func orderToMap(r *core.Record) map[string]any {
	return map[string]any{
		"id":               r.Id,
		"customer":         r.GetString("customer"),
		"store":            r.GetString("store"),
		"status":           r.GetString("status"),
		"total_amount":     r.GetFloat("total_amount"),
		"profit_margin":    r.GetFloat("profit_margin"),
		"discount_applied": r.GetFloat("discount_applied"),
		"final_amount":     r.GetFloat("final_amount"),
		"payment_method":   r.GetString("payment_method"),
		"notes":            r.GetString("notes"),
		"created":          r.GetString("created"),
		"updated":          r.GetString("updated"),
	}
}

func orderDetailToMap(r *core.Record) map[string]any {
	return map[string]any{
		"id":                  r.Id,
		"product":             r.GetString("product"),
		"quantity":            r.GetFloat("quantity"),
		"unit_price":          r.GetFloat("unit_price"),
		"height":              r.GetFloat("height"),
		"width":               r.GetFloat("width"),
		"linear_meter":        r.GetFloat("linear_meter"),
		"total_extra_options": r.GetFloat("total_extra_options"),
		"subtotal":            r.GetFloat("subtotal"),
		"extra_options":       r.Get("extra_options"),
	}
}

func HandleOrderList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("orders", activeFilter, "-created", 0, 0, nil)
		if err != nil {
			log.Printf("order_list: query failed: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "No se pudo listar las órdenes.")
		}

		out := make([]map[string]any, 0, len(records))
		for _, r := range records {
			out = append(out, orderToMap(r))
		}
		return e.JSON(http.StatusOK, out)
	}
}

func HandleOrderView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, ok := requirePathID(e)
		if !ok {
			return nil
		}

		record, err := app.FindRecordById("orders", id)
		if err != nil || record.GetString("deleted_at") != "" {
			return errorJSON(e, http.StatusNotFound, "Orden no encontrada.")
		}

		details, err := app.FindRecordsByFilter("order_details",
			"order = {:orderId} && "+activeFilter, "created", 0, 0,
			map[string]any{"orderId": id})
		if err != nil {
			log.Printf("order_view: could not load details for %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "No se pudo cargar los detalles de la orden.")
		}

		out := orderToMap(record)
		detailMaps := make([]map[string]any, 0, len(details))
		for _, d := range details {
			detailMaps = append(detailMaps, orderDetailToMap(d))
		}
		out["details"] = detailMaps

		return e.JSON(http.StatusOK, out)
	}
}

// HandleOrderCreate persists the order header and its detail rows. Detail
// subtotals and the order totals are recomputed server side; the discount is
// applied to the summed detail subtotals to produce the final amount.
func HandleOrderCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload orderPayload
		if err := e.BindBody(&payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		}

		if payload.Store == "" {
			return errorJSON(e, http.StatusBadRequest, "La tienda es obligatoria.")
		}
		if len(payload.Details) == 0 {
			return errorJSON(e, http.StatusBadRequest, "La orden debe tener al menos un detalle.")
		}
		if payload.DiscountApplied < 0 {
			return errorJSON(e, http.StatusBadRequest, "El descuento no puede ser negativo.")
		}

		if _, err := app.FindRecordById("stores", payload.Store); err != nil {
			return errorJSON(e, http.StatusNotFound, "Tienda no encontrada.")
		}
		if payload.Customer != "" {
			if _, err := app.FindRecordById("customers", payload.Customer); err != nil {
				return errorJSON(e, http.StatusNotFound, "Cliente no encontrado.")
			}
		}

		statusID := payload.Status
		if statusID == "" {
			pending, err := app.FindFirstRecordByFilter("order_statuses", "name = 'Pendiente'")
			if err != nil {
				log.Printf("order_create: could not resolve default status: %v", err)
				return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
			}
			statusID = pending.Id
		} else if _, err := app.FindRecordById("order_statuses", statusID); err != nil {
			return errorJSON(e, http.StatusNotFound, "Estado no encontrado.")
		}

		var totalAmount float64
		for _, d := range payload.Details {
			if d.Quantity <= 0 {
				return errorJSON(e, http.StatusBadRequest, "La cantidad de cada detalle debe ser mayor a cero.")
			}
			if _, err := app.FindRecordById("products", d.Product); err != nil {
				return errorJSON(e, http.StatusNotFound, "Producto del detalle no encontrado.")
			}
			totalAmount += d.Quantity * (d.UnitPrice + d.TotalExtraOptions)
		}

		finalAmount := totalAmount - payload.DiscountApplied
		if finalAmount < 0 {
			return errorJSON(e, http.StatusBadRequest, "El descuento no puede superar el total de la orden.")
		}

		ordersCol, err := app.FindCollectionByNameOrId("orders")
		if err != nil {
			log.Printf("order_create: could not find orders collection: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}
		detailsCol, err := app.FindCollectionByNameOrId("order_details")
		if err != nil {
			log.Printf("order_create: could not find order_details collection: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		order := core.NewRecord(ordersCol)
		if payload.Customer != "" {
			order.Set("customer", payload.Customer)
		}
		order.Set("store", payload.Store)
		order.Set("status", statusID)
		order.Set("total_amount", totalAmount)
		order.Set("profit_margin", payload.ProfitMargin)
		order.Set("discount_applied", payload.DiscountApplied)
		order.Set("final_amount", finalAmount)
		order.Set("payment_method", payload.PaymentMethod)
		order.Set("notes", payload.Notes)

		if err := app.Save(order); err != nil {
			log.Printf("order_create: could not save order: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		detailMaps := make([]map[string]any, 0, len(payload.Details))
		for _, d := range payload.Details {
			dr := core.NewRecord(detailsCol)
			dr.Set("order", order.Id)
			dr.Set("product", d.Product)
			dr.Set("quantity", d.Quantity)
			dr.Set("unit_price", d.UnitPrice)
			dr.Set("height", d.Height)
			dr.Set("width", d.Width)
			dr.Set("linear_meter", d.LinearMeter)
			dr.Set("total_extra_options", d.TotalExtraOptions)
			dr.Set("subtotal", d.Quantity*(d.UnitPrice+d.TotalExtraOptions))
			if len(d.ExtraOptions) > 0 {
				dr.Set("extra_options", d.ExtraOptions)
			}
			if err := app.Save(dr); err != nil {
				log.Printf("order_create: could not save detail for order %s: %v", order.Id, err)
				return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
			}
			detailMaps = append(detailMaps, orderDetailToMap(dr))
		}

		out := orderToMap(order)
		out["details"] = detailMaps
		return e.JSON(http.StatusCreated, out)
	}
}

// HandleOrderStatusPatch moves an order to a new status.
func HandleOrderStatusPatch(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, ok := requirePathID(e)
		if !ok {
			return nil
		}

		record, err := app.FindRecordById("orders", id)
		if err != nil || record.GetString("deleted_at") != "" {
			return errorJSON(e, http.StatusNotFound, "Orden no encontrada.")
		}

		var payload struct {
			Status string `json:"status"`
		}
		if err := e.BindBody(&payload); err != nil || payload.Status == "" {
			return errorJSON(e, http.StatusBadRequest, "El estado es obligatorio.")
		}

		if _, err := app.FindRecordById("order_statuses", payload.Status); err != nil {
			return errorJSON(e, http.StatusNotFound, "Estado no encontrado.")
		}

		record.Set("status", payload.Status)
		if err := app.Save(record); err != nil {
			log.Printf("order_status_patch: could not save order %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusOK, orderToMap(record))
	}
}

func HandleOrderDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, ok := requirePathID(e)
		if !ok {
			return nil
		}

		record, err := app.FindRecordById("orders", id)
		if err != nil || record.GetString("deleted_at") != "" {
			return errorJSON(e, http.StatusNotFound, "Orden no encontrada.")
		}

		if err := softDelete(app, record); err != nil {
			log.Printf("order_delete: failed to delete order %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusOK, map[string]string{"detail": "Orden eliminada."})
	}
}
