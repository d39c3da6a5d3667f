package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/flow-nodes/internal/entity"
	"github.com/xavierca1/flow-nodes/internal/infra/integration/agilecrm"
	"github.com/xavierca1/flow-nodes/internal/infra/queue"
	"github.com/xavierca1/flow-nodes/internal/usecase"
)

type MockUpdateExecutor struct {
	mock.Mock
}

func (m *MockUpdateExecutor) Execute(ctx context.Context, input usecase.UpdateContactInput) (usecase.UpdateContactOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(usecase.UpdateContactOutput), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishContactUpdate(ctx context.Context, job queue.ContactUpdateJob) (string, error) {
	args := m.Called(ctx, job)
	return args.String(0), args.Error(1)
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestContactUpdateSuccess(t *testing.T) {
	uc := new(MockUpdateExecutor)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(in usecase.UpdateContactInput) bool {
		return in.Contact.ID == 11 && len(in.Contact.Tags) == 2
	})).Return(usecase.UpdateContactOutput{
		ExecutionID: "exec-1",
		Status:      entity.ExecutionSuccess,
		Updated:     []string{"(Tag) a ", "(Tag) b "},
	}, nil)

	h := NewContactHandler(uc, nil)
	w := postJSON(t, h.Update, `{"method":"PUT","body":{"id":11,"tags":["a","b"]}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var out usecase.UpdateContactOutput
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Equal(t, "exec-1", out.ExecutionID)
	assert.Equal(t, []string{"(Tag) a ", "(Tag) b "}, out.Updated)
}

func TestContactUpdateInvalidJSON(t *testing.T) {
	h := NewContactHandler(new(MockUpdateExecutor), nil)
	w := postJSON(t, h.Update, `{nope`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	json.NewDecoder(w.Body).Decode(&resp)
	assert.Equal(t, "INVALID_JSON", resp.Error)
}

func TestContactUpdateErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", usecase.ValidationErrors{{Field: "id", Message: "is required"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"remote", &entity.RemoteAPIError{StatusCode: 400, Messages: []string{"bad"}}, http.StatusBadGateway, "AGILECRM_ERROR"},
		{"partial", &entity.PartialUpdateError{Updated: []string{"email "}, Err: errors.New("timeout")}, http.StatusBadGateway, "PARTIAL_UPDATE"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUpdateExecutor)
			uc.On("Execute", mock.Anything, mock.Anything).
				Return(usecase.UpdateContactOutput{ExecutionID: "exec-9", Updated: []string{"email "}}, tt.err)

			w := postJSON(t, NewContactHandler(uc, nil).Update, `{"body":{"id":1}}`)

			assert.Equal(t, tt.status, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.code, resp.Error)
		})
	}
}

func TestContactUpdateAsyncEnqueues(t *testing.T) {
	producer := new(MockProducer)
	producer.On("PublishContactUpdate", mock.Anything, mock.MatchedBy(func(job queue.ContactUpdateJob) bool {
		return job.Contact.ID == 3 && *job.Contact.StarValue == 4
	})).Return("job-77", nil)

	h := NewContactHandler(new(MockUpdateExecutor), producer)
	w := postJSON(t, h.UpdateAsync, `{"body":{"id":3,"star_value":4}}`)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"job_id":"job-77"}`, w.Body.String())
	producer.AssertExpectations(t)
}

func TestContactUpdateAsyncRejectsInvalidInput(t *testing.T) {
	producer := new(MockProducer)

	h := NewContactHandler(new(MockUpdateExecutor), producer)
	w := postJSON(t, h.UpdateAsync, `{"body":{"tags":["a"]}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	producer.AssertNotCalled(t, "PublishContactUpdate", mock.Anything, mock.Anything)
}

func TestContactUpdateAsyncWithoutQueue(t *testing.T) {
	h := NewContactHandler(new(MockUpdateExecutor), nil)
	w := postJSON(t, h.UpdateAsync, `{"body":{"id":1}}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestContactUpdateForeignURIKeepsCredentials(t *testing.T) {
	var foreignHits atomic.Int32
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		foreignHits.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer foreign.Close()

	crm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer crm.Close()

	client := agilecrm.NewClient(crm.URL+"/", entity.AgileCRMCredentials{Email: "ops@corp", APIKey: "SECRET-KEY"}, nil)
	h := NewContactHandler(usecase.NewUpdateContactUseCase(client, nil, nil, nil, nil), nil)

	w := postJSON(t, h.Update, `{"uri":"`+foreign.URL+`/","body":{"id":1,"tags":["x"]}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "CONFIGURATION_ERROR", resp.Error)
	assert.NotContains(t, w.Body.String(), "SECRET-KEY")
	assert.Zero(t, foreignHits.Load())
}
