package server

import (
	"net/http"

	"github.com/clientdesk/clientdesk/internal/handlers"
)

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	a := s.app

	// Portal pages
	mux.HandleFunc("/", a.PageHandler.HandleDashboard)
	mux.HandleFunc("/login", a.PageHandler.HandleLoginPage)
	mux.HandleFunc("/signup", a.PageHandler.HandleSignupPage)
	mux.HandleFunc("/logout", a.PageHandler.HandleLogout)

	// Auth endpoints
	mux.HandleFunc("/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{"POST": a.AuthHandler.HandleSignup})
	})
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{"POST": a.AuthHandler.HandleLogin})
	})
	mux.HandleFunc("/auth/signup-form", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{"POST": a.AuthHandler.HandleSignupForm})
	})
	mux.HandleFunc("/auth/login-form", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{"POST": a.AuthHandler.HandleLoginForm})
	})
	mux.HandleFunc("/auth/google", a.AuthHandler.HandleGoogleLogin)
	mux.HandleFunc("/auth/google/callback", a.AuthHandler.HandleGoogleCallback)

	// Public API routes
	mux.HandleFunc("/api/health", handlers.HandleHealth)
	mux.HandleFunc("/api/version", handlers.HandleVersion)

	// Protected CRM API routes
	protect := handlers.RequireAuth(a.Issuer, a.Logger)

	mux.Handle("/api/customers", protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RouteResourceCollection(w, r, a.CustomerHandler.HandleList, a.CustomerHandler.HandleCreate)
	})))
	mux.Handle("/api/customers/{id}", protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RouteResourceItem(w, r, a.CustomerHandler.HandleGet, a.CustomerHandler.HandleUpdate, a.CustomerHandler.HandleDelete)
	})))

	mux.Handle("/api/orders", protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RouteResourceCollection(w, r, a.OrderHandler.HandleList, a.OrderHandler.HandleCreate)
	})))
	mux.Handle("/api/orders/{id}", protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RouteResourceItem(w, r, a.OrderHandler.HandleGet, nil, a.OrderHandler.HandleDelete)
	})))

	mux.Handle("/api/segments", protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RouteResourceCollection(w, r, a.SegmentHandler.HandleList, a.SegmentHandler.HandleCreate)
	})))
	mux.Handle("/api/segments/{id}", protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RouteResourceItem(w, r, nil, nil, a.SegmentHandler.HandleDelete)
	})))

	mux.Handle("/api/campaigns", protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RouteResourceCollection(w, r, a.CampaignHandler.HandleList, a.CampaignHandler.HandleCreate)
	})))
	mux.Handle("/api/campaigns/{id}", protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RouteResourceItem(w, r, nil, nil, a.CampaignHandler.HandleDelete)
	})))

	mux.Handle("/api/communication-logs", protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{"GET": a.CampaignHandler.HandleLogs})
	})))

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

// handleNotFound returns a JSON 404 for unmatched API routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	handlers.WriteErrorEnvelope(w, http.StatusNotFound, "The requested endpoint does not exist")
}
