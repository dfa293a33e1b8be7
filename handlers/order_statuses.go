package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleOrderStatusList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("order_statuses", "id != ''", "created", 0, 0, nil)
		if err != nil {
			log.Printf("order_status_list: query failed: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "No se pudo listar los estados.")
		}

		out := make([]map[string]any, 0, len(records))
		for _, r := range records {
			out = append(out, map[string]any{"id": r.Id, "name": r.GetString("name")})
		}
		return e.JSON(http.StatusOK, out)
	}
}

func HandleOrderStatusCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload struct {
			Name string `json:"name"`
		}
		if err := e.BindBody(&payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		}

		payload.Name = strings.TrimSpace(payload.Name)
		if payload.Name == "" {
			return errorJSON(e, http.StatusBadRequest, "El nombre es obligatorio.")
		}

		if dup, _ := app.FindFirstRecordByFilter("order_statuses", "name = {:name}",
			map[string]any{"name": payload.Name}); dup != nil {
			return errorJSON(e, http.StatusConflict, "Ya existe un estado con ese nombre.")
		}

		col, err := app.FindCollectionByNameOrId("order_statuses")
		if err != nil {
			log.Printf("order_status_create: could not find order_statuses collection: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		record := core.NewRecord(col)
		record.Set("name", payload.Name)

		if err := app.Save(record); err != nil {
			log.Printf("order_status_create: could not save order status: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusCreated, map[string]any{"id": record.Id, "name": record.GetString("name")})
	}
}
