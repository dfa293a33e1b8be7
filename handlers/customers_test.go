package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"printshop/testhelpers"
)

func TestHandleCustomerCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	body := `{"entity_type": "N", "name": "María", "last_name": "Quispe", "dni": "45678912", "phone_number": "987654321"}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	if err := HandleCustomerCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if out["dni"] != "45678912" {
		t.Errorf("dni = %v, want 45678912", out["dni"])
	}
}

func TestHandleCustomerCreateDuplicateDNI(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCustomer(t, app, "María", "45678912")

	body := `{"entity_type": "N", "name": "Otra", "dni": "45678912"}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	if err := HandleCustomerCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409; body: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleCustomerCreateJuridicalRequiresRUC(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	body := `{"entity_type": "J", "business_name": "Inversiones Wari SAC"}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	if err := HandleCustomerCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleCustomerDeleteFreesDNIForReuse(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "María", "45678912")

	delReq := httptest.NewRequest(http.MethodDelete, "/customers/"+customer.Id, nil)
	delReq.SetPathValue("id", customer.Id)
	delRec := httptest.NewRecorder()
	if err := HandleCustomerDelete(app)(newTestRequestEvent(app, delReq, delRec)); err != nil {
		t.Fatalf("delete handler returned error: %v", err)
	}
	if delRec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", delRec.Code)
	}

	// Soft-deleted records do not count toward uniqueness.
	body := `{"entity_type": "N", "name": "María", "dni": "45678912"}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	if err := HandleCustomerCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("create handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("recreate status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleCustomerUpdateConflict(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCustomer(t, app, "María", "45678912")
	other := testhelpers.CreateTestCustomer(t, app, "Rosa", "11223344")

	body := `{"entity_type": "N", "name": "Rosa", "dni": "45678912"}`
	req := httptest.NewRequest(http.MethodPut, "/customers/"+other.Id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", other.Id)
	rec := httptest.NewRecorder()

	if err := HandleCustomerUpdate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409; body: %s", rec.Code, rec.Body.String())
	}
}
