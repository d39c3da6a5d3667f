package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigurationError is raised before any network call.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// RemoteAPIError is returned whenever the CRM answers with a structured error list.
type RemoteAPIError struct {
	StatusCode int
	Messages   []string
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("AgileCRM error response [%d]: %s", e.StatusCode, strings.Join(e.Messages, " | "))
}

func IsRemoteAPIError(err error) bool {
	var target *RemoteAPIError
	return errors.As(err, &target)
}

// PartialUpdateError reports which facets were applied before Err.
// Applied changes are not rolled back.
type PartialUpdateError struct {
	Updated []string
	Err     error
}

func (e *PartialUpdateError) Error() string {
	return fmt.Sprintf("Not all items updated. Updated items: %s \n \n%v", strings.Join(e.Updated, " , "), e.Err)
}

func (e *PartialUpdateError) Unwrap() error {
	return e.Err
}

func IsPartialUpdateError(err error) bool {
	var target *PartialUpdateError
	return errors.As(err, &target)
}
