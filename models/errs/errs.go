package errs

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ValidationError means a transition guard failed. User-correctable,
// reported before any persistence or notification call is made.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

func NewValidationError(message string, fields ...string) ValidationError {
	return ValidationError{Message: message, Fields: fields}
}

// ConflictError means a conditional status update lost a race with another
// staff member acting on the same candidate.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) ConflictError {
	return ConflictError{Message: message}
}

// PersistenceError means the store rejected a read or write. The transition
// is safe to retry as-is.
type PersistenceError struct {
	Err error
}

func (e PersistenceError) Error() string {
	return "persistence failure: " + e.Err.Error()
}

func (e PersistenceError) Unwrap() error {
	return e.Err
}

// NotificationDeliveryError means the outbound message could not be sent.
// The status change is never committed in that case.
type NotificationDeliveryError struct {
	Kind string
	Err  error
}

func (e NotificationDeliveryError) Error() string {
	return fmt.Sprintf("notification delivery failure (%s): %s", e.Kind, e.Err.Error())
}

func (e NotificationDeliveryError) Unwrap() error {
	return e.Err
}

// ComputeError means the external scorer failed; no cache entry is written,
// so the call may be retried.
type ComputeError struct {
	Err error
}

func (e ComputeError) Error() string {
	return "compute failure: " + e.Err.Error()
}

func (e ComputeError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var e ValidationError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e ConflictError
	return errors.As(err, &e)
}

func IsNotificationDelivery(err error) bool {
	var e NotificationDeliveryError
	return errors.As(err, &e)
}

func IsCompute(err error) bool {
	var e ComputeError
	return errors.As(err, &e)
}
