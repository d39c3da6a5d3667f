package usecase

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// ValidateJSON never fails: ok is false when the text is not valid JSON.
func ValidateJSON(text string) (any, bool) {
	var result any
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, false
	}
	return result, true
}

func ValidateUpdateContactInput(input UpdateContactInput) []ValidationError {
	var errors []ValidationError

	if input.Contact.ID <= 0 {
		errors = append(errors, ValidationError{"id", "is required"})
	}

	switch strings.ToUpper(input.Method) {
	case "", http.MethodPut, http.MethodPost, http.MethodPatch:
	default:
		errors = append(errors, ValidationError{"method", "must be PUT, POST or PATCH"})
	}

	for i, p := range input.Contact.Properties {
		if strings.TrimSpace(p.Name) == "" {
			errors = append(errors, ValidationError{fmt.Sprintf("properties[%d].name", i), "is required"})
		}
	}

	for i, tag := range input.Contact.Tags {
		if strings.TrimSpace(tag) == "" {
			errors = append(errors, ValidationError{fmt.Sprintf("tags[%d]", i), "must not be blank"})
		}
	}

	if input.Contact.StarValue != nil && (*input.Contact.StarValue < 0 || *input.Contact.StarValue > 5) {
		errors = append(errors, ValidationError{"star_value", "must be between 0 and 5"})
	}

	return errors
}
