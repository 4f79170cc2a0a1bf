package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response as {"message": ...}
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"message": message}, logger)
}

// WriteErrorDetails writes an error response as {"message": ..., "details": ...}
func WriteErrorDetails(w http.ResponseWriter, status int, message, details string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"message": message, "details": details}, logger)
}
