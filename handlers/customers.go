package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type customerPayload struct {
	EntityType   string `json:"entity_type"`
	Name         string `json:"name"`
	LastName     string `json:"last_name"`
	BusinessName string `json:"business_name"`
	DNI          string `json:"dni"`
	RUC          string `json:"ruc"`
	DocForeign   string `json:"doc_foreign"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email"`
	TypeClient   string `json:"type_client"`
}

func customerToMap(r *core.Record) map[string]any {
	return map[string]any{
		"id":            r.Id,
		"entity_type":   r.GetString("entity_type"),
		"name":          r.GetString("name"),
		"last_name":     r.GetString("last_name"),
		"business_name": r.GetString("business_name"),
		"dni":           r.GetString("dni"),
		"ruc":           r.GetString("ruc"),
		"doc_foreign":   r.GetString("doc_foreign"),
		"phone_number":  r.GetString("phone_number"),
		"email":         r.GetString("email"),
		"type_client":   r.GetString("type_client"),
		"created":       r.GetString("created"),
		"updated":       r.GetString("updated"),
	}
}

func HandleCustomerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("customers", activeFilter, "-created", 0, 0, nil)
		if err != nil {
			log.Printf("customer_list: query failed: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "No se pudo listar los clientes.")
		}

		out := make([]map[string]any, 0, len(records))
		for _, r := range records {
			out = append(out, customerToMap(r))
		}
		return e.JSON(http.StatusOK, out)
	}
}

func HandleCustomerCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload customerPayload
		if err := e.BindBody(&payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		}

		payload.DNI = strings.TrimSpace(payload.DNI)
		payload.RUC = strings.TrimSpace(payload.RUC)

		if payload.EntityType != "N" && payload.EntityType != "J" {
			return errorJSON(e, http.StatusBadRequest, "El tipo de cliente debe ser N o J.")
		}
		if payload.EntityType == "J" && payload.RUC == "" {
			return errorJSON(e, http.StatusBadRequest, "El RUC es obligatorio para persona jurídica.")
		}

		if payload.DNI != "" {
			if dup, _ := app.FindFirstRecordByFilter("customers", "dni = {:dni} && "+activeFilter,
				map[string]any{"dni": payload.DNI}); dup != nil {
				return errorJSON(e, http.StatusConflict, "Ya existe un cliente con ese DNI.")
			}
		}
		if payload.RUC != "" {
			if dup, _ := app.FindFirstRecordByFilter("customers", "ruc = {:ruc} && "+activeFilter,
				map[string]any{"ruc": payload.RUC}); dup != nil {
				return errorJSON(e, http.StatusConflict, "Ya existe un cliente con ese RUC.")
			}
		}

		col, err := app.FindCollectionByNameOrId("customers")
		if err != nil {
			log.Printf("customer_create: could not find customers collection: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		record := core.NewRecord(col)
		setCustomerFields(record, payload)

		if err := app.Save(record); err != nil {
			log.Printf("customer_create: could not save customer: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusCreated, customerToMap(record))
	}
}

func HandleCustomerUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, ok := requirePathID(e)
		if !ok {
			return nil
		}

		record, err := app.FindRecordById("customers", id)
		if err != nil || record.GetString("deleted_at") != "" {
			return errorJSON(e, http.StatusNotFound, "Cliente no encontrado.")
		}

		var payload customerPayload
		if err := e.BindBody(&payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		}

		payload.DNI = strings.TrimSpace(payload.DNI)
		payload.RUC = strings.TrimSpace(payload.RUC)

		if payload.DNI != "" {
			if dup, _ := app.FindFirstRecordByFilter("customers",
				"dni = {:dni} && id != {:id} && "+activeFilter,
				map[string]any{"dni": payload.DNI, "id": id}); dup != nil {
				return errorJSON(e, http.StatusConflict, "Ya existe un cliente con ese DNI.")
			}
		}
		if payload.RUC != "" {
			if dup, _ := app.FindFirstRecordByFilter("customers",
				"ruc = {:ruc} && id != {:id} && "+activeFilter,
				map[string]any{"ruc": payload.RUC, "id": id}); dup != nil {
				return errorJSON(e, http.StatusConflict, "Ya existe un cliente con ese RUC.")
			}
		}

		setCustomerFields(record, payload)

		if err := app.Save(record); err != nil {
			log.Printf("customer_update: could not save customer %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusOK, customerToMap(record))
	}
}

func HandleCustomerDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, ok := requirePathID(e)
		if !ok {
			return nil
		}

		record, err := app.FindRecordById("customers", id)
		if err != nil || record.GetString("deleted_at") != "" {
			return errorJSON(e, http.StatusNotFound, "Cliente no encontrado.")
		}

		if err := softDelete(app, record); err != nil {
			log.Printf("customer_delete: failed to delete customer %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusOK, map[string]string{"detail": "Cliente eliminado."})
	}
}

func setCustomerFields(record *core.Record, p customerPayload) {
	record.Set("entity_type", p.EntityType)
	record.Set("name", p.Name)
	record.Set("last_name", p.LastName)
	record.Set("business_name", p.BusinessName)
	record.Set("dni", p.DNI)
	record.Set("ruc", p.RUC)
	record.Set("doc_foreign", p.DocForeign)
	record.Set("phone_number", p.PhoneNumber)
	record.Set("email", p.Email)
	if p.TypeClient != "" {
		record.Set("type_client", p.TypeClient)
	}
}
