package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutionFinish(t *testing.T) {
	e := NewExecution("AGILECRM", "contact.update", 1)
	e.Finish([]string{"lead_score"}, nil)
	assert.Equal(t, ExecutionSuccess, e.Status)
	assert.Empty(t, e.Error)

	e = NewExecution("AGILECRM", "contact.update", 1)
	e.Finish([]string{"email "}, errors.New("boom"))
	assert.Equal(t, ExecutionPartial, e.Status)
	assert.Equal(t, "boom", e.Error)

	e = NewExecution("AGILECRM", "contact.update", 1)
	e.Finish(nil, errors.New("boom"))
	assert.Equal(t, ExecutionFailed, e.Status)
	assert.Equal(t, []string{}, e.Updated)
}

func TestNewExecutionIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewExecution("a", "b", 1).ID, NewExecution("a", "b", 1).ID)
}
