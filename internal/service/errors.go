package service

import (
	"errors"
	"strings"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicate         = errors.New("resource already exists")
	ErrAlreadySubmitted  = errors.New("evaluation already submitted by this student")
	ErrIncompleteAttempt = errors.New("every question must be answered before submitting")
	ErrEvaluationClosed  = errors.New("evaluation is not open for submissions")
	ErrForbidden         = errors.New("operation not allowed")
	ErrOperationFailed   = errors.New("operation failed")
)

// FieldError names a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Details flattens the field errors for an API error body.
func (e *ValidationError) Details() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Field+": "+f.Message)
	}
	return out
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// orNil returns e as an error only when it holds at least one field.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func newValidationError(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
