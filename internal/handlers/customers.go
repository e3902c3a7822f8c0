package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/clientdesk/clientdesk/internal/interfaces"
	"github.com/clientdesk/clientdesk/internal/models"
	"github.com/clientdesk/clientdesk/internal/storage/badger"
)

// CustomerHandler serves the /api/customers resource.
type CustomerHandler struct {
	logger  *common.Logger
	storage interfaces.CustomerStorage
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(logger *common.Logger, storage interfaces.CustomerStorage) *CustomerHandler {
	return &CustomerHandler{logger: logger, storage: storage}
}

// HandleList handles GET /api/customers.
func (h *CustomerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	customers, err := h.storage.List(r.Context())
	if err != nil {
		h.logError("list customers", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"customers": customers,
	})
}

// HandleGet handles GET /api/customers/{id}.
func (h *CustomerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	customer, err := h.storage.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, badger.ErrRecordNotFound) {
			WriteMessage(w, http.StatusNotFound, "Customer not found.")
			return
		}
		h.logError("get customer", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"customer": customer,
	})
}

type customerRequest struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	TotalSpend  float64   `json:"total_spend"`
	VisitCount  int       `json:"visit_count"`
	LastVisitAt time.Time `json:"last_visit_at"`
}

// HandleCreate handles POST /api/customers.
func (h *CustomerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Name == "" || req.Email == "" {
		WriteMessage(w, http.StatusBadRequest, "Name and email are required.")
		return
	}

	customer := &models.Customer{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		TotalSpend:  req.TotalSpend,
		VisitCount:  req.VisitCount,
		LastVisitAt: req.LastVisitAt,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.storage.Create(r.Context(), customer); err != nil {
		h.logError("create customer", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"customer": customer,
	})
}

// HandleUpdate handles PUT /api/customers/{id}.
func (h *CustomerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	existing, err := h.storage.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, badger.ErrRecordNotFound) {
			WriteMessage(w, http.StatusNotFound, "Customer not found.")
			return
		}
		h.logError("update customer", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Name == "" || req.Email == "" {
		WriteMessage(w, http.StatusBadRequest, "Name and email are required.")
		return
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.TotalSpend = req.TotalSpend
	existing.VisitCount = req.VisitCount
	if !req.LastVisitAt.IsZero() {
		existing.LastVisitAt = req.LastVisitAt
	}

	if err := h.storage.Update(r.Context(), existing); err != nil {
		h.logError("update customer", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"customer": existing,
	})
}

// HandleDelete handles DELETE /api/customers/{id}.
func (h *CustomerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, badger.ErrRecordNotFound) {
			WriteMessage(w, http.StatusNotFound, "Customer not found.")
			return
		}
		h.logError("delete customer", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *CustomerHandler) logError(op string, err error) {
	if h.logger != nil {
		h.logger.Error().Str("op", op).Str("error", err.Error()).Msg("customer request failed")
	}
}
