package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/flow-nodes/internal/entity"
	"github.com/xavierca1/flow-nodes/internal/infra/queue"
	"github.com/xavierca1/flow-nodes/internal/usecase"
)

type ContactUpdateExecutor interface {
	Execute(ctx context.Context, input usecase.UpdateContactInput) (usecase.UpdateContactOutput, error)
}

type ContactHandler struct {
	UpdateUC ContactUpdateExecutor
	Producer queue.ProducerInterface
}

func NewContactHandler(uc ContactUpdateExecutor, producer queue.ProducerInterface) *ContactHandler {
	return &ContactHandler{UpdateUC: uc, Producer: producer}
}

// Update (POST /agilecrm/contacts/update)
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.UpdateUC.Execute(r.Context(), input)
	if err != nil {
		writeUpdateError(w, output, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// UpdateAsync (POST /agilecrm/contacts/update/async) só enfileira o job.
func (h *ContactHandler) UpdateAsync(w http.ResponseWriter, r *http.Request) {
	if h.Producer == nil {
		writeErrorResponse(w, http.StatusServiceUnavailable, "QUEUE_UNAVAILABLE", "fila não configurada")
		return
	}

	var input usecase.UpdateContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if errs := usecase.ValidateUpdateContactInput(input); len(errs) > 0 {
		writeUpdateError(w, usecase.UpdateContactOutput{}, usecase.ValidationErrors(errs))
		return
	}

	jobID, err := h.Producer.PublishContactUpdate(r.Context(), queue.ContactUpdateJob{
		Method:  input.Method,
		BaseURI: input.BaseURI,
		Query:   input.Query,
		Contact: input.Contact,
	})
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "QUEUE_ERROR", "Erro ao enfileirar atualização")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"job_id": jobID})
}

func writeUpdateError(w http.ResponseWriter, output usecase.UpdateContactOutput, err error) {
	resp := ErrorResponse{
		Message:     err.Error(),
		ExecutionID: output.ExecutionID,
		Updated:     output.Updated,
	}

	var validation usecase.ValidationErrors
	switch {
	case errors.As(err, &validation):
		resp.Error = "VALIDATION_ERROR"
		resp.Message = "invalid contact update"
		for _, v := range validation {
			resp.Details = append(resp.Details, v.Error())
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case entity.IsConfigurationError(err):
		resp.Error = "CONFIGURATION_ERROR"
		writeJSON(w, http.StatusBadRequest, resp)
	case entity.IsRemoteAPIError(err):
		resp.Error = "AGILECRM_ERROR"
		writeJSON(w, http.StatusBadGateway, resp)
	case entity.IsPartialUpdateError(err):
		resp.Error = "PARTIAL_UPDATE"
		writeJSON(w, http.StatusBadGateway, resp)
	default:
		resp.Error = "INTERNAL_ERROR"
		writeJSON(w, http.StatusInternalServerError, resp)
	}
}
