package handlers

import (
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent wraps a recorded request in the event type the handler
// closures receive, bypassing the router.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	var e core.RequestEvent
	e.App = app
	e.Request = req
	e.Response = rec
	return &e
}
