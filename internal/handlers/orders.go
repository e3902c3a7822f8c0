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

// OrderHandler serves the /api/orders resource. Creating an order also
// rolls the amount and visit count into the owning customer record.
type OrderHandler struct {
	logger    *common.Logger
	orders    interfaces.OrderStorage
	customers interfaces.CustomerStorage
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(logger *common.Logger, orders interfaces.OrderStorage, customers interfaces.CustomerStorage) *OrderHandler {
	return &OrderHandler{logger: logger, orders: orders, customers: customers}
}

// HandleList handles GET /api/orders. An optional customer_id query
// parameter narrows the result to one customer's orders.
func (h *OrderHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var (
		orders []models.Order
		err    error
	)
	if customerID := r.URL.Query().Get("customer_id"); customerID != "" {
		orders, err = h.orders.ListByCustomer(r.Context(), customerID)
	} else {
		orders, err = h.orders.List(r.Context())
	}
	if err != nil {
		h.logError("list orders", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  orders,
	})
}

// HandleGet handles GET /api/orders/{id}.
func (h *OrderHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, badger.ErrRecordNotFound) {
			WriteMessage(w, http.StatusNotFound, "Order not found.")
			return
		}
		h.logError("get order", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}

type orderRequest struct {
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

// HandleCreate handles POST /api/orders.
func (h *OrderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.CustomerID == "" || req.Amount <= 0 {
		WriteMessage(w, http.StatusBadRequest, "Customer and a positive amount are required.")
		return
	}

	customer, err := h.customers.Get(r.Context(), req.CustomerID)
	if err != nil {
		if errors.Is(err, badger.ErrRecordNotFound) {
			WriteMessage(w, http.StatusNotFound, "Customer not found.")
			return
		}
		h.logError("create order", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:         uuid.New().String(),
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Status:     req.Status,
		CreatedAt:  now,
	}
	if order.Status == "" {
		order.Status = "completed"
	}

	if err := h.orders.Create(r.Context(), order); err != nil {
		h.logError("create order", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	customer.TotalSpend += order.Amount
	customer.VisitCount++
	customer.LastVisitAt = now
	if err := h.customers.Update(r.Context(), customer); err != nil {
		h.logError("update customer aggregates", err)
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}

// HandleDelete handles DELETE /api/orders/{id}.
func (h *OrderHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, badger.ErrRecordNotFound) {
			WriteMessage(w, http.StatusNotFound, "Order not found.")
			return
		}
		h.logError("delete order", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *OrderHandler) logError(op string, err error) {
	if h.logger != nil {
		h.logger.Error().Str("op", op).Str("error", err.Error()).Msg("order request failed")
	}
}
