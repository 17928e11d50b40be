package failure

import (
	"errors"
	"net/http"
)

// Sentinel causes carried by Failure values, matchable with errors.Is.
var (
	ErrUniqueConstraintViolation = errors.New("unique constraint violation")
	ErrInvalidEnumValue          = errors.New("invalid enum value")
	ErrInvalidDecimalValue       = errors.New("invalid decimal value")
	ErrStoreUnavailable          = errors.New("store unavailable")
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel cause, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// UniqueConstraintViolation reports a write rejected by a uniqueness constraint.
func UniqueConstraintViolation(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		cause:   ErrUniqueConstraintViolation,
	}
}

// InvalidEnumValue reports a value outside a closed enumeration.
func InvalidEnumValue(message string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: message,
		cause:   ErrInvalidEnumValue,
	}
}

// InvalidDecimalValue reports a decimal that does not fit the column's precision or scale.
func InvalidDecimalValue(message string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: message,
		cause:   ErrInvalidDecimalValue,
	}
}

// StoreUnavailable reports a failure to reach the database.
func StoreUnavailable(err error) error {
	msg := ErrStoreUnavailable.Error()
	if err != nil {
		msg = msg + ": " + err.Error()
	}

	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: msg,
		cause:   ErrStoreUnavailable,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
