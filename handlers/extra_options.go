package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type extraOptionPayload struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func extraOptionToMap(r *core.Record) map[string]any {
	return map[string]any{
		"id":      r.Id,
		"name":    r.GetString("name"),
		"price":   r.GetFloat("price"),
		"created": r.GetString("created"),
		"updated": r.GetString("updated"),
	}
}

func HandleExtraOptionList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("extra_options", activeFilter, "name", 0, 0, nil)
		if err != nil {
			log.Printf("extra_option_list: query failed: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "No se pudo listar los extras.")
		}

		out := make([]map[string]any, 0, len(records))
		for _, r := range records {
			out = append(out, extraOptionToMap(r))
		}
		return e.JSON(http.StatusOK, out)
	}
}

func HandleExtraOptionCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload extraOptionPayload
		if err := e.BindBody(&payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		}

		payload.Name = strings.TrimSpace(payload.Name)
		if payload.Name == "" {
			return errorJSON(e, http.StatusBadRequest, "El nombre es obligatorio.")
		}
		if payload.Price < 0 {
			return errorJSON(e, http.StatusBadRequest, "El precio no puede ser negativo.")
		}

		if dup, _ := app.FindFirstRecordByFilter("extra_options", "name = {:name} && "+activeFilter,
			map[string]any{"name": payload.Name}); dup != nil {
			return errorJSON(e, http.StatusConflict, "Ya existe un extra con ese nombre.")
		}

		col, err := app.FindCollectionByNameOrId("extra_options")
		if err != nil {
			log.Printf("extra_option_create: could not find extra_options collection: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		record := core.NewRecord(col)
		record.Set("name", payload.Name)
		record.Set("price", payload.Price)

		if err := app.Save(record); err != nil {
			log.Printf("extra_option_create: could not save extra option: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusCreated, extraOptionToMap(record))
	}
}

func HandleExtraOptionUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, ok := requirePathID(e)
		if !ok {
			return nil
		}

		record, err := app.FindRecordById("extra_options", id)
		if err != nil || record.GetString("deleted_at") != "" {
			return errorJSON(e, http.StatusNotFound, "Extra no encontrado.")
		}

		var payload extraOptionPayload
		if err := e.BindBody(&payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		}

		payload.Name = strings.TrimSpace(payload.Name)
		if payload.Name != "" {
			if dup, _ := app.FindFirstRecordByFilter("extra_options",
				"name = {:name} && id != {:id} && "+activeFilter,
				map[string]any{"name": payload.Name, "id": id}); dup != nil {
				return errorJSON(e, http.StatusConflict, "Ya existe un extra con ese nombre.")
			}
			record.Set("name", payload.Name)
		}
		record.Set("price", payload.Price)

		if err := app.Save(record); err != nil {
			log.Printf("extra_option_update: could not save extra option %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusOK, extraOptionToMap(record))
	}
}

func HandleExtraOptionDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, ok := requirePathID(e)
		if !ok {
			return nil
		}

		record, err := app.FindRecordById("extra_options", id)
		if err != nil || record.GetString("deleted_at") != "" {
			return errorJSON(e, http.StatusNotFound, "Extra no encontrado.")
		}

		if err := softDelete(app, record); err != nil {
			log.Printf("extra_option_delete: failed to delete extra option %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusOK, map[string]string{"detail": "Extra eliminado."})
	}
}
