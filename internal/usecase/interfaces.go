package usecase

import (
	"context"

	"github.com/xavierca1/flow-nodes/internal/entity"
	"github.com/xavierca1/flow-nodes/internal/infra/integration/agilecrm"
)

type ContactUpdater interface {
	UpdateContact(ctx context.Context, r agilecrm.UpdateRequest) (agilecrm.UpdateResult, error)
}

// AlertService avisa o time quando uma atualização parou no meio.
type AlertService interface {
	SendPartialUpdateAlert(contactID int64, updated []string, cause string) error
}

type MetricsRecorder interface {
	RecordContactUpdate(status string)
	RecordIntegrationError(service string)
}

type UpdateContactInput struct {
	Method  string               `json:"method"`
	BaseURI string               `json:"uri"`
	Query   map[string]string    `json:"query"`
	Contact entity.ContactUpdate `json:"body"`
}

type UpdateContactOutput struct {
	ExecutionID string   `json:"execution_id"`
	Status      string   `json:"status"`
	Updated     []string `json:"updated"`
	Response    any      `json:"response,omitempty"`
}
