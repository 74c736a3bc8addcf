package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures catalog, settings and profile validation issues.
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

// NotFoundError reports an identifier missing from a static catalog.
type NotFoundError struct {
	Kind  string
	ID    string
	Known []string
}

// NewNotFoundError constructs a NotFoundError. Known lists the valid identifiers.
func NewNotFoundError(kind, id string, known []string) error {
	return &NotFoundError{Kind: kind, ID: id, Known: known}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// InstallError represents a failed package-manager invocation.
type InstallError struct {
	Manager  string
	Packages []string
	Output   string
	Err      error
}

// NewInstallError constructs an InstallError.
func NewInstallError(manager string, packages []string, output string, err error) error {
	return &InstallError{Manager: manager, Packages: packages, Output: output, Err: err}
}

func (e *InstallError) Error() string {
	if e == nil {
		return ""
	}
	target := "dependencies"
	if len(e.Packages) > 0 {
		target = strings.Join(e.Packages, " ")
	}
	return fmt.Sprintf("%s failed to install %s: %v", e.Manager, target, e.Err)
}

// Unwrap exposes the underlying error.
func (e *InstallError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
