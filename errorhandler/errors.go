package errorhandler

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrServiceError marks errors reported by the remote service.
	ErrServiceError = errors.New("errorhandler: service error")

	// ErrUnmarshalFailed is returned when no unmarshaller recognized the
	// error payload. It is a client-side failure: the client's knowledge
	// of the service's error shapes is incomplete.
	ErrUnmarshalFailed = errors.New("errorhandler: unable to unmarshal error response from service")
)

// ServiceError is a structured failure reported by the remote service.
// Unmarshallers construct it from the error payload; the handler enriches
// it with the response status code and headers before returning it.
type ServiceError struct {
	ErrorCode  string
	StatusCode int
	Message    string
	RequestID  string
	Headers    http.Header
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("errorhandler: %s: %s", e.ErrorCode, e.Message)
	}

	return fmt.Sprintf("errorhandler: service returned %s (status %d)", e.ErrorCode, e.StatusCode)
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(target, ErrServiceError)
}

func (e *ServiceError) Unwrap() error {
	return ErrServiceError
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}

	return nil, false
}
