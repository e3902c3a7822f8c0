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

// SegmentHandler serves the /api/segments resource.
type SegmentHandler struct {
	logger  *common.Logger
	storage interfaces.SegmentStorage
}

// NewSegmentHandler creates a new segment handler.
func NewSegmentHandler(logger *common.Logger, storage interfaces.SegmentStorage) *SegmentHandler {
	return &SegmentHandler{logger: logger, storage: storage}
}

// HandleList handles GET /api/segments.
func (h *SegmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	segments, err := h.storage.List(r.Context())
	if err != nil {
		h.logError("list segments", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if segments == nil {
		segments = []models.Segment{}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"segments": segments,
	})
}

type segmentRequest struct {
	Name  string `json:"name"`
	Rules string `json:"rules"`
}

// HandleCreate handles POST /api/segments. The creator is taken from the
// verified bearer claims.
func (h *SegmentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req segmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Name == "" || req.Rules == "" {
		WriteMessage(w, http.StatusBadRequest, "Name and rules are required.")
		return
	}

	segment := &models.Segment{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Rules:     req.Rules,
		CreatedAt: time.Now().UTC(),
	}
	if claims := ClaimsFromContext(r); claims != nil {
		segment.CreatedBy = claims.UserID
	}

	if err := h.storage.Create(r.Context(), segment); err != nil {
		h.logError("create segment", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"segment": segment,
	})
}

// HandleDelete handles DELETE /api/segments/{id}.
func (h *SegmentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, badger.ErrRecordNotFound) {
			WriteMessage(w, http.StatusNotFound, "Segment not found.")
			return
		}
		h.logError("delete segment", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *SegmentHandler) logError(op string, err error) {
	if h.logger != nil {
		h.logger.Error().Str("op", op).Str("error", err.Error()).Msg("segment request failed")
	}
}
