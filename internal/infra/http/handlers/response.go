package handlers

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error       string   `json:"error"`
	Message     string   `json:"message"`
	ExecutionID string   `json:"execution_id,omitempty"`
	Updated     []string `json:"updated,omitempty"`
	Details     []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}
