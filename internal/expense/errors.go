package expense

import "fmt"

// ValidationError reports a field that violates one of the expense rules.
// Message names the field and the rule, e.g. "amount too large".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, rule string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " " + rule}
}

// NotFoundError reports an operation targeting an id that does not exist.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("expense %d not found", e.ID)
}
