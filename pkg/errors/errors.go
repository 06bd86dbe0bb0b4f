package errors

import (
	"fmt"
	"strings"
)

// ConfigurationError is raised at construction time when a component definition is
// structurally undefined, e.g. duplicate elements passed to a variant map.
type ConfigurationError struct {
	Subject    string
	Duplicates []string
	Message    string
	Err        error
}

// NewConfigurationError constructs a ConfigurationError.
func NewConfigurationError(subject, message string, err error) error {
	return &ConfigurationError{Subject: subject, Message: message, Err: err}
}

// NewDuplicateError reports the given duplicates, each listed once.
func NewDuplicateError(subject string, duplicates []string) error {
	return &ConfigurationError{
		Subject:    subject,
		Duplicates: append([]string(nil), duplicates...),
		Message: fmt.Sprintf(
			"duplicate elements detected: %s. Each element must be unique",
			strings.Join(duplicates, ", "),
		),
	}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Subject != "" {
		return fmt.Sprintf("configuration error [%s]: %s", e.Subject, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

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

// ValidationError captures catalog validation issues.
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

// ReferenceError reports a component that names another one which cannot be resolved.
type ReferenceError struct {
	Component string
	Ref       string
}

// NewReferenceError constructs a ReferenceError.
func NewReferenceError(component, ref string) error {
	return &ReferenceError{Component: component, Ref: ref}
}

func (e *ReferenceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("reference error: component %q refers to unknown component %q", e.Component, e.Ref)
}

// RegistryError indicates issues registering or resolving an element factory.
type RegistryError struct {
	Tag     string
	Message string
	Err     error
}

// NewRegistryError constructs a RegistryError for the given tag.
func NewRegistryError(tag string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RegistryError{Tag: tag, Message: message, Err: err}
}

func (e *RegistryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Tag != "" {
		return fmt.Sprintf("registry error [%s]: %s", e.Tag, e.Message)
	}
	return fmt.Sprintf("registry error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RegistryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
