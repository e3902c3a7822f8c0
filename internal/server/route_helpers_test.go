package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouteByMethod(t *testing.T) {
	routes := MethodRouter{
		"GET": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("got"))
		},
	}

	rec := httptest.NewRecorder()
	RouteByMethod(rec, httptest.NewRequest("GET", "/x", nil), routes)
	if rec.Code != http.StatusOK || rec.Body.String() != "got" {
		t.Errorf("GET: %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	RouteByMethod(rec, httptest.NewRequest("DELETE", "/x", nil), routes)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE: status = %d, want 405", rec.Code)
	}
}

func TestRouteResourceCollection(t *testing.T) {
	list := func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("list")) }

	rec := httptest.NewRecorder()
	RouteResourceCollection(rec, httptest.NewRequest("GET", "/x", nil), list, nil)
	if rec.Body.String() != "list" {
		t.Errorf("GET routed to %q", rec.Body.String())
	}

	// POST with no create handler is rejected.
	rec = httptest.NewRecorder()
	RouteResourceCollection(rec, httptest.NewRequest("POST", "/x", nil), list, nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST: status = %d, want 405", rec.Code)
	}
}

func TestRouteResourceItem(t *testing.T) {
	get := func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("get")) }
	del := func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("del")) }

	rec := httptest.NewRecorder()
	RouteResourceItem(rec, httptest.NewRequest("DELETE", "/x/1", nil), get, nil, del)
	if rec.Body.String() != "del" {
		t.Errorf("DELETE routed to %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	RouteResourceItem(rec, httptest.NewRequest("PUT", "/x/1", nil), get, nil, del)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("PUT: status = %d, want 405", rec.Code)
	}
}
