package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Warn("http.encode_failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := errorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, status, resp)
}
