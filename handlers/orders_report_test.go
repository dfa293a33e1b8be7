package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"

	"printshop/testhelpers"
)

func TestHandleOrdersReportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	store := testhelpers.CreateTestStore(t, app, "LCV-01", "Laser Color Veloz")
	customer := testhelpers.CreateTestCustomer(t, app, "María", "45678912")
	status := testhelpers.CreateTestOrderStatus(t, app, "Pendiente")
	testhelpers.CreateTestOrder(t, app, customer.Id, store.Id, status.Id, 200, 236)

	req := httptest.NewRequest(http.MethodGet, "/orders/report/excel", nil)
	rec := httptest.NewRecorder()

	if err := HandleOrdersReportExcel(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected Content-Type %q", ct)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("could not reopen generated workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	customerCell, _ := f.GetCellValue(sheet, "B2")
	if customerCell != "María Quispe" {
		t.Errorf("B2 = %q, want María Quispe", customerCell)
	}
	statusCell, _ := f.GetCellValue(sheet, "D2")
	if statusCell != "Pendiente" {
		t.Errorf("D2 = %q, want Pendiente", statusCell)
	}
}

func TestHandleOrdersReportExcelSkipsDeleted(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	store := testhelpers.CreateTestStore(t, app, "LCV-01", "Laser Color Veloz")
	status := testhelpers.CreateTestOrderStatus(t, app, "Pendiente")
	order := testhelpers.CreateTestOrder(t, app, "", store.Id, status.Id, 100, 118)
	if err := softDelete(app, order); err != nil {
		t.Fatalf("could not soft delete order: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/orders/report/excel", nil)
	rec := httptest.NewRecorder()

	if err := HandleOrdersReportExcel(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("could not reopen generated workbook: %v", err)
	}
	defer f.Close()

	idCell, _ := f.GetCellValue(f.GetSheetName(0), "A2")
	if idCell != "" {
		t.Errorf("deleted order leaked into report: %q", idCell)
	}
}
