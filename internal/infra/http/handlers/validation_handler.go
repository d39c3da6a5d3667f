package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/flow-nodes/internal/usecase"
)

type ValidationHandler struct{}

func NewValidationHandler() *ValidationHandler {
	return &ValidationHandler{}
}

// Handle (POST /json/validate) recebe {"json": "<texto>"}; texto inválido não é erro HTTP.
func (h *ValidationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input struct {
		JSON *string `json:"json"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if input.JSON == nil {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FIELDS", "json is required")
		return
	}

	value, ok := usecase.ValidateJSON(*input.JSON)
	writeJSON(w, http.StatusOK, map[string]any{
		"valid": ok,
		"value": value,
	})
}
