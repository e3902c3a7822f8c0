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

// fakeOrders is an in-memory order store for handler tests.
type fakeOrders struct {
	records map[string]*models.Order
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{records: make(map[string]*models.Order)}
}

func (f *fakeOrders) List(_ context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.records))
	for _, o := range f.records {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrders) ListByCustomer(_ context.Context, customerID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.records {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrders) Get(_ context.Context, id string) (*models.Order, error) {
	if o, ok := f.records[id]; ok {
		return o, nil
	}
	return nil, badger.ErrRecordNotFound
}

func (f *fakeOrders) Create(_ context.Context, o *models.Order) error {
	f.records[o.ID] = o
	return nil
}

func (f *fakeOrders) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return badger.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func TestOrderCreateRollsUpCustomer(t *testing.T) {
	customers := newFakeCustomers()
	customers.records["c1"] = &models.Customer{ID: "c1", Name: "Acme", Email: "ops@acme.test", TotalSpend: 10, VisitCount: 2}
	orders := newFakeOrders()
	h := NewOrderHandler(nil, orders, customers)

	req := httptest.NewRequest("POST", "/api/orders",
		strings.NewReader(`{"customer_id":"c1","amount":25.5}`))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	order, ok := body["order"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing order: %v", body)
	}
	if order["status"] != "completed" {
		t.Errorf("default status = %v", order["status"])
	}

	customer := customers.records["c1"]
	if customer.TotalSpend != 35.5 {
		t.Errorf("total spend = %v, want 35.5", customer.TotalSpend)
	}
	if customer.VisitCount != 3 {
		t.Errorf("visit count = %d, want 3", customer.VisitCount)
	}
	if customer.LastVisitAt.IsZero() {
		t.Error("last visit not recorded")
	}
}

func TestOrderCreateUnknownCustomer(t *testing.T) {
	h := NewOrderHandler(nil, newFakeOrders(), newFakeCustomers())

	req := httptest.NewRequest("POST", "/api/orders",
		strings.NewReader(`{"customer_id":"missing","amount":10}`))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestOrderCreateValidation(t *testing.T) {
	h := NewOrderHandler(nil, newFakeOrders(), newFakeCustomers())

	for _, body := range []string{
		`{"amount":10}`,
		`{"customer_id":"c1"}`,
		`{"customer_id":"c1","amount":-5}`,
	} {
		rec := httptest.NewRecorder()
		h.HandleCreate(rec, httptest.NewRequest("POST", "/api/orders", strings.NewReader(body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestOrderListByCustomer(t *testing.T) {
	orders := newFakeOrders()
	orders.records["o1"] = &models.Order{ID: "o1", CustomerID: "c1", Amount: 5}
	orders.records["o2"] = &models.Order{ID: "o2", CustomerID: "c2", Amount: 7}
	h := NewOrderHandler(nil, orders, newFakeCustomers())

	rec := httptest.NewRecorder()
	h.HandleList(rec, httptest.NewRequest("GET", "/api/orders?customer_id=c1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	list, _ := body["orders"].([]interface{})
	if len(list) != 1 {
		t.Fatalf("expected one order for c1, got %d", len(list))
	}
}
