package handlers

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/clientdesk/clientdesk/internal/interfaces"
	"github.com/clientdesk/clientdesk/internal/models"
	"github.com/clientdesk/clientdesk/internal/storage/badger"
)

// CampaignHandler serves /api/campaigns and /api/communication-logs.
// There is no real delivery vendor wired in; campaign creation simulates
// a send per customer and records the outcome in the communication log.
type CampaignHandler struct {
	logger    *common.Logger
	campaigns interfaces.CampaignStorage
	logs      interfaces.CommunicationLogStorage
	customers interfaces.CustomerStorage
}

// NewCampaignHandler creates a new campaign handler.
func NewCampaignHandler(
	logger *common.Logger,
	campaigns interfaces.CampaignStorage,
	logs interfaces.CommunicationLogStorage,
	customers interfaces.CustomerStorage,
) *CampaignHandler {
	return &CampaignHandler{logger: logger, campaigns: campaigns, logs: logs, customers: customers}
}

// HandleList handles GET /api/campaigns.
func (h *CampaignHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.List(r.Context())
	if err != nil {
		h.logError("list campaigns", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"campaigns": campaigns,
	})
}

type campaignRequest struct {
	Name      string `json:"name"`
	SegmentID string `json:"segment_id"`
	Message   string `json:"message"`
}

// HandleCreate handles POST /api/campaigns. The campaign is persisted,
// then a simulated delivery runs for every customer, writing one
// communication log entry each. Roughly nine in ten sends succeed.
func (h *CampaignHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Name == "" || req.Message == "" {
		WriteMessage(w, http.StatusBadRequest, "Name and message are required.")
		return
	}

	now := time.Now().UTC()
	campaign := &models.Campaign{
		ID:        uuid.New().String(),
		Name:      req.Name,
		SegmentID: req.SegmentID,
		Message:   req.Message,
		Status:    "sent",
		CreatedAt: now,
	}
	if claims := ClaimsFromContext(r); claims != nil {
		campaign.CreatedBy = claims.UserID
	}

	if err := h.campaigns.Create(r.Context(), campaign); err != nil {
		h.logError("create campaign", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	audience, err := h.customers.List(r.Context())
	if err != nil {
		h.logError("load campaign audience", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	sent, failed := 0, 0
	for _, customer := range audience {
		entry := &models.CommunicationLog{
			ID:         uuid.New().String(),
			CampaignID: campaign.ID,
			CustomerID: customer.ID,
			CreatedAt:  now,
		}
		if rand.Intn(10) < 9 {
			entry.Status = "SENT"
			entry.SentAt = now
			sent++
		} else {
			entry.Status = "FAILED"
			failed++
		}
		if err := h.logs.Create(r.Context(), entry); err != nil {
			h.logError("write communication log", err)
		}
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"campaign": campaign,
		"sent":     sent,
		"failed":   failed,
	})
}

// HandleDelete handles DELETE /api/campaigns/{id}.
func (h *CampaignHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, badger.ErrRecordNotFound) {
			WriteMessage(w, http.StatusNotFound, "Campaign not found.")
			return
		}
		h.logError("delete campaign", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// HandleLogs handles GET /api/communication-logs. An optional campaign_id
// query parameter narrows the result to a single campaign.
func (h *CampaignHandler) HandleLogs(w http.ResponseWriter, r *http.Request) {
	var (
		logs []models.CommunicationLog
		err  error
	)
	if campaignID := r.URL.Query().Get("campaign_id"); campaignID != "" {
		logs, err = h.logs.ListByCampaign(r.Context(), campaignID)
	} else {
		logs, err = h.logs.List(r.Context())
	}
	if err != nil {
		h.logError("list communication logs", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if logs == nil {
		logs = []models.CommunicationLog{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"logs":    logs,
	})
}

func (h *CampaignHandler) logError(op string, err error) {
	if h.logger != nil {
		h.logger.Error().Str("op", op).Str("error", err.Error()).Msg("campaign request failed")
	}
}
