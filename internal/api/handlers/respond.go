package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nutrilens/nutrilens-be/internal/apperr"
	"github.com/rs/zerolog/log"
)

// writeJSON writes a JSON response with a status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeData writes the standard success envelope.
func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, map[string]any{
		"status": "success",
		"data":   data,
	})
}

// writeError maps an error onto the operational envelope. 4xx statuses
// report "fail", everything else "error"; non-operational errors are
// logged and surface as a generic 500.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("Request failed")
	}

	word := "error"
	if status < http.StatusInternalServerError {
		word = "fail"
	}
	writeJSON(w, status, map[string]string{
		"status":  word,
		"message": apperr.MessageOf(err),
	})
}
