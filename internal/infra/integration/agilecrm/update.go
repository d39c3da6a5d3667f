package agilecrm

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/flow-nodes/internal/entity"
)

const (
	PropertiesEndpoint = "api/contacts/edit-properties"
	LeadScoreEndpoint  = "api/contacts/edit/lead-score"
	TagsEndpoint       = "api/contacts/edit/tags"
	StarValueEndpoint  = "api/contacts/edit/add-star"
)

type facetCall struct {
	endpoint string
	body     any
	markers  []string
}

// UpdateContact applies each present facet with its own request, in the order
// properties, lead_score, tags, star_value. A facet is only attempted after
// the previous one succeeded.
func (c *Client) UpdateContact(ctx context.Context, r UpdateRequest) (UpdateResult, error) {
	method := r.Method
	if method == "" {
		method = http.MethodPut
	}
	result := UpdateResult{Updated: []string{}}

	base := c.baseURL
	if r.BaseURI != "" {
		if err := c.sameOrigin(r.BaseURI); err != nil {
			return result, err
		}
		base = r.BaseURI
	}

	if !r.Contact.HasFacets() {
		c.logger.Warn("agilecrm contact update without facets, nothing sent", zap.Int64("contact_id", r.Contact.ID))
		return result, nil
	}

	for _, call := range facetCalls(r.Contact) {
		resp, err := c.do(ctx, method, base+call.endpoint, r.Query, call.body, !omitsBody(method))
		if err != nil {
			if entity.IsRemoteAPIError(err) {
				return result, err
			}
			return result, &entity.PartialUpdateError{Updated: result.Updated, Err: err}
		}
		result.Response = resp
		result.Updated = append(result.Updated, call.markers...)

		c.logger.Debug("agilecrm facet updated",
			zap.Int64("contact_id", r.Contact.ID),
			zap.String("endpoint", call.endpoint),
		)
	}

	return result, nil
}

func facetCalls(contact entity.ContactUpdate) []facetCall {
	var calls []facetCall

	if contact.Properties != nil {
		markers := make([]string, 0, len(contact.Properties))
		for _, p := range contact.Properties {
			markers = append(markers, fmt.Sprintf("%s ", p.Name))
		}
		calls = append(calls, facetCall{
			endpoint: PropertiesEndpoint,
			body:     propertiesBody{ID: contact.ID, Properties: contact.Properties},
			markers:  markers,
		})
	}

	if contact.LeadScore != nil {
		calls = append(calls, facetCall{
			endpoint: LeadScoreEndpoint,
			body:     leadScoreBody{ID: contact.ID, LeadScore: *contact.LeadScore},
			markers:  []string{"lead_score"},
		})
	}

	if contact.Tags != nil {
		markers := make([]string, 0, len(contact.Tags))
		for _, tag := range contact.Tags {
			markers = append(markers, fmt.Sprintf("(Tag) %s ", tag))
		}
		calls = append(calls, facetCall{
			endpoint: TagsEndpoint,
			body:     tagsBody{ID: contact.ID, Tags: contact.Tags},
			markers:  markers,
		})
	}

	if contact.StarValue != nil {
		calls = append(calls, facetCall{
			endpoint: StarValueEndpoint,
			body:     starValueBody{ID: contact.ID, StarValue: *contact.StarValue},
			markers:  []string{"star_value"},
		})
	}

	return calls
}
