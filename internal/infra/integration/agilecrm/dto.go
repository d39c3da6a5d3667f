package agilecrm

import (
	"net/url"

	"github.com/xavierca1/flow-nodes/internal/entity"
)

type Request struct {
	Method   string
	Endpoint string
	Body     any
	Query    url.Values
	URI      string // sobrescreve baseURL + Endpoint
}

type UpdateRequest struct {
	Method  string // default PUT
	BaseURI string // default: base URL do client
	Query   url.Values
	Contact entity.ContactUpdate
}

// UpdateResult holds the response of the last facet call, not an aggregate.
type UpdateResult struct {
	Response any      `json:"response"`
	Updated  []string `json:"updated"`
}

type propertiesBody struct {
	ID         int64             `json:"id"`
	Properties []entity.Property `json:"properties"`
}

type leadScoreBody struct {
	ID        int64 `json:"id"`
	LeadScore int   `json:"lead_score"`
}

type tagsBody struct {
	ID   int64    `json:"id"`
	Tags []string `json:"tags"`
}

type starValueBody struct {
	ID        int64 `json:"id"`
	StarValue int   `json:"star_value"`
}
