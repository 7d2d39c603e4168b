// Package domainerr defines the error taxonomy shared by use cases, adapters and repositories.
//
// Every typed error matches one of the sentinels below through errors.Is, so callers can
// classify failures without depending on concrete types:
//
//	errors.Is(err, domainerr.ErrValidation)
package domainerr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("not found")
	ErrUnsupportedCarrier      = errors.New("unsupported carrier")
	ErrTransientUpstream       = errors.New("transient upstream error")
	ErrUpstream                = errors.New("upstream error")
	ErrPersistenceConflict     = errors.New("persistence conflict")
	ErrSessionAlreadyCompleted = errors.New("automation session already completed")
)

// ValidationError reports missing or unresolvable input. Message is safe to return to callers.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// UnsupportedCarrierError is returned by the carrier registry for unknown identifiers.
type UnsupportedCarrierError struct {
	Carrier string
}

func (e *UnsupportedCarrierError) Error() string {
	return fmt.Sprintf("no adapter found for carrier: %s", e.Carrier)
}

func (e *UnsupportedCarrierError) Is(target error) bool { return target == ErrUnsupportedCarrier }

// UpstreamError wraps a failure talking to a carrier API or the automation provider.
// Transient errors are retried with backoff; the rest are terminal for the request.
type UpstreamError struct {
	Service    string
	Operation  string
	StatusCode int
	Transient  bool
	Cause      error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Service, e.Operation)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

func (e *UpstreamError) Is(target error) bool {
	if target == ErrUpstream {
		return true
	}
	return e.Transient && target == ErrTransientUpstream
}

// IsTransient reports whether err should be retried.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientUpstream)
}
