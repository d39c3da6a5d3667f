package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateJSONHandler(t *testing.T) {
	h := NewValidationHandler()

	w := postJSON(t, h.Handle, `{"json":"{\"a\": [1, 2]}"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true,"value":{"a":[1,2]}}`, w.Body.String())

	w = postJSON(t, h.Handle, `{"json":"{broken"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":false,"value":null}`, w.Body.String())

	w = postJSON(t, h.Handle, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
