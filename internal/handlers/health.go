package handlers

import (
	"net/http"
	"time"

	"github.com/clientdesk/clientdesk/internal/config"
)

var startTime = time.Now()

// HandleHealth handles GET /api/health.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"uptime":  time.Since(startTime).Round(time.Second).String(),
		"version": config.GetVersion(),
	})
}

// HandleVersion handles GET /api/version.
func HandleVersion(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"version": config.GetVersion(),
		"build":   config.Build,
		"commit":  config.GitCommit,
	})
}
