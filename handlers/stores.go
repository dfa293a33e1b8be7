package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type storePayload struct {
	Code                 string `json:"code"`
	Name                 string `json:"name"`
	Address              string `json:"address"`
	PhoneNumber          string `json:"phone_number"`
	PhoneNumberSecondary string `json:"phone_number_secondary"`
	YapePhoneNumber      string `json:"yape_phone_number"`
	Email                string `json:"email"`
	BCPAccount           string `json:"bcp_cta"`
	BCPInterbank         string `json:"bcp_cci"`
}

func storeToMap(r *core.Record) map[string]any {
	return map[string]any{
		"id":                     r.Id,
		"code":                   r.GetString("code"),
		"name":                   r.GetString("name"),
		"address":                r.GetString("address"),
		"phone_number":           r.GetString("phone_number"),
		"phone_number_secondary": r.GetString("phone_number_secondary"),
		"yape_phone_number":      r.GetString("yape_phone_number"),
		"email":                  r.GetString("email"),
		"bcp_cta":                r.GetString("bcp_cta"),
		"bcp_cci":                r.GetString("bcp_cci"),
		"created":                r.GetString("created"),
		"updated":                r.GetString("updated"),
	}
}

func HandleStoreList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("stores", activeFilter, "code", 0, 0, nil)
		if err != nil {
			log.Printf("store_list: query failed: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "No se pudo listar las tiendas.")
		}

		out := make([]map[string]any, 0, len(records))
		for _, r := range records {
			out = append(out, storeToMap(r))
		}
		return e.JSON(http.StatusOK, out)
	}
}

func HandleStoreCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload storePayload
		if err := e.BindBody(&payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		}

		payload.Code = strings.TrimSpace(payload.Code)
		if payload.Code == "" || strings.TrimSpace(payload.Name) == "" {
			return errorJSON(e, http.StatusBadRequest, "El código y el nombre son obligatorios.")
		}

		if dup, _ := app.FindFirstRecordByFilter("stores", "code = {:code} && "+activeFilter,
			map[string]any{"code": payload.Code}); dup != nil {
			return errorJSON(e, http.StatusConflict, "Ya existe una tienda con ese código.")
		}

		col, err := app.FindCollectionByNameOrId("stores")
		if err != nil {
			log.Printf("store_create: could not find stores collection: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		record := core.NewRecord(col)
		setStoreFields(record, payload)

		if err := app.Save(record); err != nil {
			log.Printf("store_create: could not save store: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusCreated, storeToMap(record))
	}
}

func HandleStoreUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, ok := requirePathID(e)
		if !ok {
			return nil
		}

		record, err := app.FindRecordById("stores", id)
		if err != nil || record.GetString("deleted_at") != "" {
			return errorJSON(e, http.StatusNotFound, "Tienda no encontrada.")
		}

		var payload storePayload
		if err := e.BindBody(&payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		}

		payload.Code = strings.TrimSpace(payload.Code)
		if payload.Code != "" {
			if dup, _ := app.FindFirstRecordByFilter("stores",
				"code = {:code} && id != {:id} && "+activeFilter,
				map[string]any{"code": payload.Code, "id": id}); dup != nil {
				return errorJSON(e, http.StatusConflict, "Ya existe una tienda con ese código.")
			}
		}

		setStoreFields(record, payload)

		if err := app.Save(record); err != nil {
			log.Printf("store_update: could not save store %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusOK, storeToMap(record))
	}
}

func HandleStoreDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, ok := requirePathID(e)
		if !ok {
			return nil
		}

		record, err := app.FindRecordById("stores", id)
		if err != nil || record.GetString("deleted_at") != "" {
			return errorJSON(e, http.StatusNotFound, "Tienda no encontrada.")
		}

		orders, err := app.FindRecordsByFilter("orders", "store = {:storeId} && "+activeFilter,
			"", 1, 0, map[string]any{"storeId": id})
		if err == nil && len(orders) > 0 {
			return errorJSON(e, http.StatusConflict, "No se puede eliminar la tienda porque tiene órdenes activas.")
		}

		if err := softDelete(app, record); err != nil {
			log.Printf("store_delete: failed to delete store %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusOK, map[string]string{"detail": "Tienda eliminada."})
	}
}

func setStoreFields(record *core.Record, p storePayload) {
	record.Set("code", p.Code)
	record.Set("name", p.Name)
	record.Set("address", p.Address)
	record.Set("phone_number", p.PhoneNumber)
	record.Set("phone_number_secondary", p.PhoneNumberSecondary)
	record.Set("yape_phone_number", p.YapePhoneNumber)
	record.Set("email", p.Email)
	record.Set("bcp_cta", p.BCPAccount)
	record.Set("bcp_cci", p.BCPInterbank)
}
