package errors

import (
	"errors"
	"fmt"
)

// ValidationError rejects a transaction request that violates one of the
// cross-field rules. Field names the offending attribute.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// FilterError rejects a malformed filter key or operator.
type FilterError struct {
	Msg string
}

func (e *FilterError) Error() string {
	return e.Msg
}

func NewFilterError(format string, args ...interface{}) error {
	return &FilterError{Msg: fmt.Sprintf(format, args...)}
}

func IsFilterError(err error) bool {
	var filterError *FilterError
	return errors.As(err, &filterError)
}

// NotFoundError signals an entity that is absent or not owned by the
// requesting user.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

var (
	ErrTransactionNotFound = &NotFoundError{Entity: "transaction"}
	ErrCategoryNotFound    = &NotFoundError{Entity: "category"}
	ErrCreditCardNotFound  = &NotFoundError{Entity: "credit card"}
)

// NoDataError signals an export whose filter set matched zero transactions.
// Distinct from DataTransformationError: zero matches is the cause, an empty
// transformer input is only the symptom.
type NoDataError struct {
	Msg string
}

func (e *NoDataError) Error() string {
	return e.Msg
}

var ErrNoTransactions = &NoDataError{Msg: "no transactions were found for these filters"}

func IsNoDataError(err error) bool {
	var noDataError *NoDataError
	return errors.As(err, &noDataError)
}

// DataTransformationError wraps any failure while mapping transactions into
// the export table.
type DataTransformationError struct {
	Msg string
}

func (e *DataTransformationError) Error() string {
	return e.Msg
}

func NewDataTransformationError(format string, args ...interface{}) error {
	return &DataTransformationError{Msg: fmt.Sprintf(format, args...)}
}

func IsDataTransformationError(err error) bool {
	var transformationError *DataTransformationError
	return errors.As(err, &transformationError)
}
