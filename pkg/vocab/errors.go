package vocab

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by the extraction, translation and CLI layers.
var (
	ErrValidation         = errors.New("validation error")
	ErrEmptyLyrics        = errors.New("lyrics are empty")
	ErrInvalidLevel       = errors.New("invalid level")
	ErrMissingLanguage    = errors.New("target language is required")
	ErrExtraction         = errors.New("extraction failed")
	ErrTranslationMissing = errors.New("translation missing")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// Request is what a caller collects before running an extraction.
type Request struct {
	Lyrics string
	Level  Level
	// Target is the translation language; only required when NeedTarget is set.
	Target     string
	NeedTarget bool
	// SourceLanguage is an optional label forwarded to text-generation collaborators.
	SourceLanguage string
}

// Validate checks caller-side preconditions. The pipeline never performs
// these checks itself; an empty result is not an error.
func (r Request) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(r.Lyrics) == "" {
		errs = append(errs, FieldError{Field: "lyrics", Message: ErrEmptyLyrics.Error()})
	}
	if !r.Level.IsValid() {
		errs = append(errs, FieldError{Field: "level", Message: ErrInvalidLevel.Error()})
	}
	if r.NeedTarget && strings.TrimSpace(r.Target) == "" {
		errs = append(errs, FieldError{Field: "target", Message: ErrMissingLanguage.Error()})
	}
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}
