package service

import (
	"fmt"

	"github.com/babyBee3443/biogenius-sub001/internal/validator"
)

// ValidationError carries per-field reasons for a rejected mutation. No
// partial write happens when one of these is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

func newValidationError(err error) *ValidationError {
	return &ValidationError{Fields: validator.FieldErrors(err)}
}

func fieldError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}
