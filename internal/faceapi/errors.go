package faceapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnknownRegion is matched by every *ConfigurationError.
var ErrUnknownRegion = errors.New("unknown region")

// ConfigurationError is returned by NewClient when the region code is not recognized.
type ConfigurationError struct {
	Region string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("the server specified doesn't exist: %q", e.Region)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrUnknownRegion
}

// ServiceError is the error object reported by the Face API in a failure
// response body, passed through unmodified.
type ServiceError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("face api error %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// errorEnvelope is the failure body: {"error": {"code": ..., "message": ...}}.
type errorEnvelope struct {
	Error *ServiceError `json:"error"`
}

// TransportError covers failures without a structured error body: requests
// that could not be built, network errors, unreadable bodies, and failure
// responses that are not the API's error envelope.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// TrainingFailedError is returned by WaitForTraining when the server reports
// that training failed.
type TrainingFailedError struct {
	GroupID string
	Message string
}

func (e *TrainingFailedError) Error() string {
	return fmt.Sprintf("training of person group %s failed: %s", e.GroupID, e.Message)
}

// IsNotFound returns true if err is a service error with status 404.
func IsNotFound(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}
