package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/xavierca1/flow-nodes/internal/entity"
	"github.com/xavierca1/flow-nodes/internal/infra/database/mongodb"
)

type MongoDBHandler struct {
	Check func(ctx context.Context, params entity.MongoConnectionParams) error
}

func NewMongoDBHandler() *MongoDBHandler {
	return &MongoDBHandler{Check: mongodb.CheckConnection}
}

type ProjectItemsRequest struct {
	Items  []entity.Item `json:"items"`
	Fields []string      `json:"fields"`
}

// ResolveCredentials (POST /mongodb/credentials/resolve)
func (h *MongoDBHandler) ResolveCredentials(w http.ResponseWriter, r *http.Request) {
	var creds *entity.MongoCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	params, err := mongodb.ResolveCredentials(creds)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "CONFIGURATION_ERROR", err.Error())
		return
	}

	secret := ""
	if creds != nil {
		secret = creds.Password
	}
	params.ConnectionString = maskSecret(params.ConnectionString, secret)
	writeJSON(w, http.StatusOK, params)
}

// TestConnection (POST /mongodb/credentials/test)
func (h *MongoDBHandler) TestConnection(w http.ResponseWriter, r *http.Request) {
	var creds *entity.MongoCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	params, err := mongodb.ResolveCredentials(creds)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "CONFIGURATION_ERROR", err.Error())
		return
	}

	if err := h.Check(r.Context(), params); err != nil {
		writeErrorResponse(w, http.StatusBadGateway, "CONNECTION_FAILED", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "database": params.Database})
}

// ProjectItems (POST /mongodb/items/project)
func (h *MongoDBHandler) ProjectItems(w http.ResponseWriter, r *http.Request) {
	var req ProjectItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	out, err := mongodb.ItemCopy(req.Items, req.Fields)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "COPY_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// A senha nunca volta na resposta.
func maskSecret(connString, secret string) string {
	if secret == "" {
		return connString
	}
	return strings.ReplaceAll(connString, ":"+secret+"@", ":****@")
}
