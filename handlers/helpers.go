package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
)

// activeFilter restricts a collection filter to records that were never
// soft-deleted.
const activeFilter = "deleted_at = ''"

// errorJSON writes the API error envelope used by every handler.
func errorJSON(e *core.RequestEvent, status int, detail string) error {
	return e.JSON(status, map[string]string{"detail": detail})
}

// softDelete stamps the record instead of removing the row, so historical
// orders keep resolving their relations.
func softDelete(app core.App, record *core.Record) error {
	record.Set("deleted_at", types.NowDateTime())
	return app.Save(record)
}

// sanitizeFilename makes a string safe for a Content-Disposition filename.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(" ", "-", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(name)
}

// requirePathID extracts the {id} path value or writes a 400.
func requirePathID(e *core.RequestEvent) (string, bool) {
	id := e.Request.PathValue("id")
	if id == "" {
		_ = errorJSON(e, http.StatusBadRequest, "Falta el ID del recurso.")
		return "", false
	}
	return id, true
}
