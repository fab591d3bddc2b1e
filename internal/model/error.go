package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string       `json:"error"`
	Message       string       `json:"message"`
	Fields        []FieldError `json:"fields,omitempty"`
	CorrelationID string       `json:"correlation_id,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidIdentifier  = "INVALID_IDENTIFIER"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeDuplicateValue     = "DUPLICATE_VALUE"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeIntegrityViolation = "INTEGRITY_VIOLATION"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeTotalMismatch      = "TOTAL_MISMATCH"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// ErrorKind classifies a DomainError for the caller.
type ErrorKind int

const (
	// KindValidation marks malformed or constraint-violating input.
	KindValidation ErrorKind = iota + 1
	// KindNotFound marks an identifier that does not resolve.
	KindNotFound
	// KindIntegrity marks an operation that would break a referential invariant.
	KindIntegrity
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindIntegrity:
		return "integrity"
	default:
		return "unknown"
	}
}

// FieldError names the input field at fault and why.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Domain errors for business logic
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Fields  []FieldError
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(kind ErrorKind, code, message string, fields ...FieldError) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Fields:  fields,
	}
}

// NewValidationError creates a client input error.
func NewValidationError(code, message string, fields ...FieldError) *DomainError {
	return NewDomainError(KindValidation, code, message, fields...)
}

// NewNotFoundError creates an error for an identifier that does not resolve.
func NewNotFoundError(message string, fields ...FieldError) *DomainError {
	return NewDomainError(KindNotFound, ErrCodeNotFound, message, fields...)
}

// NewIntegrityError creates an error for a referential invariant violation.
func NewIntegrityError(message string, fields ...FieldError) *DomainError {
	return NewDomainError(KindIntegrity, ErrCodeIntegrityViolation, message, fields...)
}

// InvalidIdentifier reports a malformed identifier supplied in field.
func InvalidIdentifier(field, value string) *DomainError {
	return NewValidationError(
		ErrCodeInvalidIdentifier,
		fmt.Sprintf("invalid identifier %q for %s", value, field),
		FieldError{Field: field, Reason: "must be a valid UUID"},
	)
}

// EntityNotFound reports that no entity of the given kind has id.
func EntityNotFound(entity string, id uuid.UUID) *DomainError {
	return NewNotFoundError(fmt.Sprintf("%s %s not found", entity, id))
}

// ReferenceNotFound reports that field references an entity that does not exist.
func ReferenceNotFound(entity, field string, id uuid.UUID) *DomainError {
	return NewNotFoundError(
		fmt.Sprintf("%s %s not found", entity, id),
		FieldError{Field: field, Reason: fmt.Sprintf("%s does not exist", entity)},
	)
}

// AsDomainError unwraps err into a DomainError if it carries one.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsKind reports whether err carries a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	de, ok := AsDomainError(err)
	return ok && de.Kind == kind
}

// Common domain errors
var (
	ErrEmptyCart = NewValidationError(ErrCodeEmptyCart, "Cart has no items",
		FieldError{Field: "cart_id", Reason: "cart is empty"})
	ErrCartOwnership = NewIntegrityError("Cart does not belong to customer",
		FieldError{Field: "cart_id", Reason: "cart belongs to a different customer"})
)
