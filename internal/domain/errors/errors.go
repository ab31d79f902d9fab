package errors

import "fmt"

// Stable error codes returned to clients as "urn:error:<code>".
const (
	CodeInvalidValue          = "invalid_value"
	CodeBusinessRuleViolation = "business_rule_violation"
	CodeEntityNotFound        = "entity_not_found"
	CodeDuplicateEntity       = "duplicate_entity"
	CodeDatabaseError         = "database_error"
	CodeNotFound              = "not_found"
	CodeValidationError       = "validation_error"
	CodeUnauthorized          = "unauthorized"
	CodeForbidden             = "forbidden"
	CodeInternalError         = "internal_error"
)

// DomainError is raised by value objects and entities when an invariant is
// violated. Code is one of the domain codes above.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// InvalidValue reports a value that failed value-object validation.
func InvalidValue(message string) *DomainError {
	return &DomainError{Code: CodeInvalidValue, Message: message}
}

// BusinessRuleViolation reports an operation that breaks a domain rule.
func BusinessRuleViolation(message string) *DomainError {
	return &DomainError{Code: CodeBusinessRuleViolation, Message: message}
}

// EntityNotFound reports a missing entity detected inside the domain.
func EntityNotFound(message string) *DomainError {
	return &DomainError{Code: CodeEntityNotFound, Message: message}
}

// DuplicateEntity reports a uniqueness conflict detected inside the domain.
func DuplicateEntity(message string) *DomainError {
	return &DomainError{Code: CodeDuplicateEntity, Message: message}
}

// NotFoundError is the use-case-level "no such id" error. Repositories never
// return it; they return nil and the use case synthesizes this.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFound builds a NotFoundError with a formatted message.
func NotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// DatabaseError wraps an opaque store failure. The wrapped error is logged at
// the boundary; clients only ever see a generic detail.
type DatabaseError struct {
	Err error
}

func (e *DatabaseError) Error() string { return "database error: " + e.Err.Error() }
func (e *DatabaseError) Unwrap() error { return e.Err }

// Database wraps err as a DatabaseError, passing nil through.
func Database(err error) error {
	if err == nil {
		return nil
	}
	return &DatabaseError{Err: err}
}

// FieldError names one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries structured field-level validation failures for
// callers that accumulate more than one.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidation builds an empty ValidationError.
func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// WithField appends a field error and returns the receiver for chaining.
func (e *ValidationError) WithField(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// UnauthorizedError and ForbiddenError exist for parity with the error model;
// no current use case raises them.
type UnauthorizedError struct{}

func (e *UnauthorizedError) Error() string { return "authentication required" }

type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

// InternalError is the catch-all for unexpected failures.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return e.Message }
