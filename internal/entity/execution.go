package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	ExecutionSuccess = "SUCCESS"
	ExecutionPartial = "PARTIAL"
	ExecutionFailed  = "FAILED"
)

var ErrExecutionNotFound = errors.New("execution not found")
var ErrExecutionAlreadyExists = errors.New("execution already exists")

type Execution struct {
	ID        string    `json:"id"`
	Node      string    `json:"node"`      // ex: AGILECRM
	Operation string    `json:"operation"` // ex: contact.update
	ContactID int64     `json:"contact_id"`
	Status    string    `json:"status"`
	Updated   []string  `json:"updated"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ExecutionRepository interface {
	Create(ctx context.Context, e *Execution) error
	FindByID(ctx context.Context, id string) (*Execution, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

func NewExecution(node, operation string, contactID int64) *Execution {
	return &Execution{
		ID:        uuid.New().String(),
		Node:      node,
		Operation: operation,
		ContactID: contactID,
		Status:    ExecutionSuccess,
		Updated:   []string{},
		CreatedAt: time.Now(),
	}
}

// Finish classifies the outcome: partial when some facets were applied before err.
func (e *Execution) Finish(updated []string, err error) {
	if updated != nil {
		e.Updated = updated
	}
	switch {
	case err == nil:
		e.Status = ExecutionSuccess
	case len(e.Updated) > 0:
		e.Status = ExecutionPartial
		e.Error = err.Error()
	default:
		e.Status = ExecutionFailed
		e.Error = err.Error()
	}
}
