package handlers

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteMessage writes the standard {success:false, message} failure body
// used by the auth and CRM endpoints.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// WriteErrorEnvelope writes the uniform {error:{message,status}} envelope
// used for unmatched routes and recovered panics.
func WriteErrorEnvelope(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]interface{}{
		"error": map[string]interface{}{
			"message": message,
			"status":  statusCode,
		},
	})
}
