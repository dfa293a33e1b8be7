package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleTypeClientList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("type_clients", "id != ''", "name", 0, 0, nil)
		if err != nil {
			log.Printf("type_client_list: query failed: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "No se pudo listar los tipos de cliente.")
		}

		out := make([]map[string]any, 0, len(records))
		for _, r := range records {
			out = append(out, map[string]any{"id": r.Id, "name": r.GetString("name")})
		}
		return e.JSON(http.StatusOK, out)
	}
}

func HandleTypeClientCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
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

		if dup, _ := app.FindFirstRecordByFilter("type_clients", "name = {:name}",
			map[string]any{"name": payload.Name}); dup != nil {
			return errorJSON(e, http.StatusConflict, "Ya existe un tipo de cliente con ese nombre.")
		}

		col, err := app.FindCollectionByNameOrId("type_clients")
		if err != nil {
			log.Printf("type_client_create: could not find type_clients collection: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		record := core.NewRecord(col)
		record.Set("name", payload.Name)

		if err := app.Save(record); err != nil {
			log.Printf("type_client_create: could not save type client: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusCreated, map[string]any{"id": record.Id, "name": record.GetString("name")})
	}
}
