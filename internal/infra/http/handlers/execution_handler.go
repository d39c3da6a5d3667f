package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/xavierca1/flow-nodes/internal/entity"
)

type ExecutionFinder interface {
	FindByID(ctx context.Context, id string) (*entity.Execution, error)
}

type ExecutionHandler struct {
	Repo ExecutionFinder
}

// repo nil = log de execuções desligado (sem DATABASE_URL)
func NewExecutionHandler(repo ExecutionFinder) *ExecutionHandler {
	return &ExecutionHandler{Repo: repo}
}

// Get (GET /executions/{id})
func (h *ExecutionHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		writeErrorResponse(w, http.StatusServiceUnavailable, "EXECUTIONS_UNAVAILABLE", "log de execuções não configurado")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_ID", "id de execução inválido")
		return
	}

	exec, err := h.Repo.FindByID(r.Context(), id)
	if errors.Is(err, entity.ErrExecutionNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "execução não encontrada")
		return
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro ao buscar execução")
		return
	}

	writeJSON(w, http.StatusOK, exec)
}
