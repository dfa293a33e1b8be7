package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"printshop/testhelpers"
)

func TestHandleOrderExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	store := testhelpers.CreateTestStore(t, app, "LCV-01", "Laser Color Veloz")
	customer := testhelpers.CreateTestCustomer(t, app, "María", "45678912")
	status := testhelpers.CreateTestOrderStatus(t, app, "Pendiente")
	order := testhelpers.CreateTestOrder(t, app, customer.Id, store.Id, status.Id, 120, 141.6)

	body := `{"items": [
		{"product_id": 3, "sku": "GIG-BAN", "name": "Banner 13 onzas", "quantity": 2,
		 "price": 25, "linear_meter": 2, "subtotal": 100, "total_extra_options": 8,
		 "extra_options": [{"extra_option_id": 3, "name": "Ojales reforzados", "price": 2, "quantity": 4}]}
	]}`

	req := httptest.NewRequest(http.MethodPost, "/orders/"+order.Id+"/pdf", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", order.Id)
	rec := httptest.NewRecorder()

	if err := HandleOrderExportPDF(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	wantDisposition := `attachment; filename="orden_` + order.Id + `.pdf"`
	if cd := rec.Header().Get("Content-Disposition"); cd != wantDisposition {
		t.Errorf("Content-Disposition = %q, want %q", cd, wantDisposition)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("response body does not start with PDF magic bytes")
	}
}

func TestHandleOrderExportPDFOrderNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/orders/missing/pdf", strings.NewReader(`{"items": []}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()

	if err := HandleOrderExportPDF(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleOrderExportPDFDeletedOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	store := testhelpers.CreateTestStore(t, app, "LCV-01", "Laser Color Veloz")
	status := testhelpers.CreateTestOrderStatus(t, app, "Pendiente")
	order := testhelpers.CreateTestOrder(t, app, "", store.Id, status.Id, 100, 118)
	if err := softDelete(app, order); err != nil {
		t.Fatalf("could not soft delete order: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/orders/"+order.Id+"/pdf", strings.NewReader(`{"items": []}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", order.Id)
	rec := httptest.NewRecorder()

	if err := HandleOrderExportPDF(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
