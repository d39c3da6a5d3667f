package agilecrm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xavierca1/flow-nodes/internal/entity"
)

// StatusCodeError is the plain non-2xx failure, used when the body has no error list.
type StatusCodeError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("%d - %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

type errorList struct {
	Errors []struct {
		Message any `json:"message"`
	} `json:"errors"`
}

func responseError(status int, body []byte) error {
	var list errorList
	if err := json.Unmarshal(body, &list); err == nil && list.Errors != nil {
		messages := make([]string, 0, len(list.Errors))
		for _, e := range list.Errors {
			messages = append(messages, errorMessage(e.Message))
		}
		return &entity.RemoteAPIError{StatusCode: status, Messages: messages}
	}
	return &StatusCodeError{StatusCode: status, Body: body}
}

// message pode vir como número ou objeto; ausente vira string vazia.
func errorMessage(v any) string {
	switch m := v.(type) {
	case nil:
		return ""
	case string:
		return m
	case map[string]any, []any:
		b, _ := json.Marshal(m)
		return string(b)
	default:
		return fmt.Sprint(m)
	}
}
