package entity

// AgileCRMCredentials são lidas a cada chamada, nada é guardado.
type AgileCRMCredentials struct {
	Email  string `json:"email"`
	APIKey string `json:"apiKey"`
}

type Property struct {
	Type    string `json:"type,omitempty"`
	Name    string `json:"name"`
	Subtype string `json:"subtype,omitempty"`
	Value   any    `json:"value"`
}

// ContactUpdate carries the four independently updatable facets of a contact.
// A nil facet means no call is issued for it.
type ContactUpdate struct {
	ID         int64      `json:"id"`
	Properties []Property `json:"properties,omitempty"`
	LeadScore  *int       `json:"lead_score,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	StarValue  *int       `json:"star_value,omitempty"`
}

func (c ContactUpdate) HasFacets() bool {
	return c.Properties != nil || c.LeadScore != nil || c.Tags != nil || c.StarValue != nil
}
