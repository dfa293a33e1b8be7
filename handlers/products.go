package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type productPayload struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	ProductType string  `json:"product_type"`
}

func productToMap(r *core.Record) map[string]any {
	return map[string]any{
		"id":           r.Id,
		"sku":          r.GetString("sku"),
		"name":         r.GetString("name"),
		"description":  r.GetString("description"),
		"price":        r.GetFloat("price"),
		"image":        r.GetString("image"),
		"product_type": r.GetString("product_type"),
		"created":      r.GetString("created"),
		"updated":      r.GetString("updated"),
	}
}

func HandleProductList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("products", activeFilter, "name", 0, 0, nil)
		if err != nil {
			log.Printf("product_list: query failed: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "No se pudo listar los productos.")
		}

		out := make([]map[string]any, 0, len(records))
		for _, r := range records {
			out = append(out, productToMap(r))
		}
		return e.JSON(http.StatusOK, out)
	}
}

func HandleProductCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload productPayload
		if err := e.BindBody(&payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		}

		payload.SKU = strings.TrimSpace(payload.SKU)
		if payload.SKU == "" || strings.TrimSpace(payload.Name) == "" {
			return errorJSON(e, http.StatusBadRequest, "El SKU y el nombre son obligatorios.")
		}
		if payload.Price < 0 {
			return errorJSON(e, http.StatusBadRequest, "El precio no puede ser negativo.")
		}

		if dup, _ := app.FindFirstRecordByFilter("products", "sku = {:sku} && "+activeFilter,
			map[string]any{"sku": payload.SKU}); dup != nil {
			return errorJSON(e, http.StatusConflict, "Ya existe un producto con ese SKU.")
		}

		col, err := app.FindCollectionByNameOrId("products")
		if err != nil {
			log.Printf("product_create: could not find products collection: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		record := core.NewRecord(col)
		setProductFields(record, payload)

		if err := app.Save(record); err != nil {
			log.Printf("product_create: could not save product: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusCreated, productToMap(record))
	}
}

func HandleProductUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, ok := requirePathID(e)
		if !ok {
			return nil
		}

		record, err := app.FindRecordById("products", id)
		if err != nil || record.GetString("deleted_at") != "" {
			return errorJSON(e, http.StatusNotFound, "Producto no encontrado.")
		}

		var payload productPayload
		if err := e.BindBody(&payload); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		}

		payload.SKU = strings.TrimSpace(payload.SKU)
		if payload.SKU != "" {
			if dup, _ := app.FindFirstRecordByFilter("products",
				"sku = {:sku} && id != {:id} && "+activeFilter,
				map[string]any{"sku": payload.SKU, "id": id}); dup != nil {
				return errorJSON(e, http.StatusConflict, "Ya existe un producto con ese SKU.")
			}
		}

		setProductFields(record, payload)

		if err := app.Save(record); err != nil {
			log.Printf("product_update: could not save product %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusOK, productToMap(record))
	}
}

func HandleProductDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, ok := requirePathID(e)
		if !ok {
			return nil
		}

		record, err := app.FindRecordById("products", id)
		if err != nil || record.GetString("deleted_at") != "" {
			return errorJSON(e, http.StatusNotFound, "Producto no encontrado.")
		}

		if err := softDelete(app, record); err != nil {
			log.Printf("product_delete: failed to delete product %s: %v", id, err)
			return errorJSON(e, http.StatusInternalServerError, "Algo salió mal. Intente nuevamente.")
		}

		return e.JSON(http.StatusOK, map[string]string{"detail": "Producto eliminado."})
	}
}

func setProductFields(record *core.Record, p productPayload) {
	record.Set("sku", p.SKU)
	record.Set("name", p.Name)
	record.Set("description", p.Description)
	record.Set("price", p.Price)
	record.Set("image", p.Image)
	if p.ProductType != "" {
		record.Set("product_type", p.ProductType)
	}
}
