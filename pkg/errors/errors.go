package errors

import (
	"fmt"
)

// ParseError represents a project or config decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures project shape or configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// VariantError indicates an unknown variant or a registry misconfiguration.
type VariantError struct {
	Variant string
	Message string
	Err     error
}

// NewVariantError constructs a VariantError for the given variant name.
func NewVariantError(variant string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &VariantError{Variant: variant, Message: message, Err: err}
}

func (e *VariantError) Error() string {
	if e == nil {
		return ""
	}
	if e.Variant != "" {
		return fmt.Sprintf("variant error [%s]: %s", e.Variant, e.Message)
	}
	return fmt.Sprintf("variant error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *VariantError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UploadError represents a failed transfer to the image host.
type UploadError struct {
	File       string
	StatusCode int
	Body       string
	Err        error
}

// NewUploadError constructs an UploadError.
func NewUploadError(file string, statusCode int, body string, err error) error {
	return &UploadError{File: file, StatusCode: statusCode, Body: body, Err: err}
}

func (e *UploadError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("upload error: %s: status %d: %s", e.File, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("upload error: %s: %v", e.File, e.Err)
}

// Unwrap exposes the root error.
func (e *UploadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
