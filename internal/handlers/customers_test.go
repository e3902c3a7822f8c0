package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clientdesk/clientdesk/internal/models"
	"github.com/clientdesk/clientdesk/internal/storage/badger"
)

// fakeCustomers is an in-memory customer store for handler tests.
type fakeCustomers struct {
	records map[string]*models.Customer
}

func newFakeCustomers() *fakeCustomers {
	return &fakeCustomers{records: make(map[string]*models.Customer)}
}

func (f *fakeCustomers) List(_ context.Context) ([]models.Customer, error) {
	out := make([]models.Customer, 0, len(f.records))
	for _, c := range f.records {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCustomers) Get(_ context.Context, id string) (*models.Customer, error) {
	if c, ok := f.records[id]; ok {
		copy := *c
		return &copy, nil
	}
	return nil, badger.ErrRecordNotFound
}

func (f *fakeCustomers) Create(_ context.Context, c *models.Customer) error {
	f.records[c.ID] = c
	return nil
}

func (f *fakeCustomers) Update(_ context.Context, c *models.Customer) error {
	if _, ok := f.records[c.ID]; !ok {
		return badger.ErrRecordNotFound
	}
	f.records[c.ID] = c
	return nil
}

func (f *fakeCustomers) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return badger.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func TestCustomerCreateAndGet(t *testing.T) {
	store := newFakeCustomers()
	h := NewCustomerHandler(nil, store)

	req := httptest.NewRequest("POST", "/api/customers",
		strings.NewReader(`{"name":"Acme","email":"ops@acme.test","phone":"555-0100"}`))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	customer, ok := body["customer"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing customer: %v", body)
	}
	id, _ := customer["id"].(string)
	if id == "" {
		t.Fatal("expected generated id")
	}

	req = httptest.NewRequest("GET", "/api/customers/"+id, nil)
	req.SetPathValue("id", id)
	rec = httptest.NewRecorder()
	h.HandleGet(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	body = decodeBody(t, rec)
	customer = body["customer"].(map[string]interface{})
	if customer["name"] != "Acme" {
		t.Errorf("name = %v", customer["name"])
	}
}

func TestCustomerCreateValidation(t *testing.T) {
	h := NewCustomerHandler(nil, newFakeCustomers())

	req := httptest.NewRequest("POST", "/api/customers", strings.NewReader(`{"name":"Acme"}`))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCustomerGetNotFound(t *testing.T) {
	h := NewCustomerHandler(nil, newFakeCustomers())

	req := httptest.NewRequest("GET", "/api/customers/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.HandleGet(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCustomerUpdate(t *testing.T) {
	store := newFakeCustomers()
	store.records["c1"] = &models.Customer{ID: "c1", Name: "Acme", Email: "ops@acme.test"}
	h := NewCustomerHandler(nil, store)

	req := httptest.NewRequest("PUT", "/api/customers/c1",
		strings.NewReader(`{"name":"Acme Corp","email":"ops@acme.test","total_spend":42.5}`))
	req.SetPathValue("id", "c1")
	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
	}
	if store.records["c1"].Name != "Acme Corp" {
		t.Errorf("name not updated: %+v", store.records["c1"])
	}
	if store.records["c1"].TotalSpend != 42.5 {
		t.Errorf("total spend not updated: %+v", store.records["c1"])
	}
}

func TestCustomerDelete(t *testing.T) {
	store := newFakeCustomers()
	store.records["c1"] = &models.Customer{ID: "c1", Name: "Acme", Email: "ops@acme.test"}
	h := NewCustomerHandler(nil, store)

	req := httptest.NewRequest("DELETE", "/api/customers/c1", nil)
	req.SetPathValue("id", "c1")
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(store.records) != 0 {
		t.Error("record not deleted")
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", "/api/customers/c1", nil)
	req.SetPathValue("id", "c1")
	h.HandleDelete(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeat delete status = %d, want 404", rec.Code)
	}
}

func TestCustomerListEmpty(t *testing.T) {
	h := NewCustomerHandler(nil, newFakeCustomers())

	rec := httptest.NewRecorder()
	h.HandleList(rec, httptest.NewRequest("GET", "/api/customers", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	customers, ok := body["customers"].([]interface{})
	if !ok {
		t.Fatalf("customers must be an array, got %v", body["customers"])
	}
	if len(customers) != 0 {
		t.Errorf("expected empty list, got %v", customers)
	}
}
