package attendance

import (
	"errors"
	"fmt"

	"github.com/comite-bacias/presenca/pkg/presenca"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrClosedRecord = errors.New("record is closed")
	ErrEmptyExport  = presenca.ErrEmptyExport
	ErrAuth         = errors.New("wrong admin password")
)

// FieldError names the blank or invalid input field. It matches ErrValidation with errors.Is.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

func newFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
