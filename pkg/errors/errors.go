package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ParseError represents a manifest parsing failure with optional line metadata.
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

// ValidationError captures configuration or manifest validation issues.
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

// UnknownComponentError reports a component key that is not present in the
// registry, along with the keys that are.
type UnknownComponentError struct {
	Key   string
	Known []string
}

// NewUnknownComponentError constructs an UnknownComponentError. The known key
// list is copied and sorted so the message is stable.
func NewUnknownComponentError(key string, known []string) error {
	keys := make([]string, len(known))
	copy(keys, known)
	sort.Strings(keys)
	return &UnknownComponentError{Key: key, Known: keys}
}

func (e *UnknownComponentError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown component %q", e.Key)
	}
	return fmt.Sprintf("unknown component %q (valid components: %s)", e.Key, strings.Join(e.Known, ", "))
}

// InstallError represents a failure while writing a component into the target
// project.
type InstallError struct {
	Component string
	Path      string
	Err       error
}

// NewInstallError constructs an InstallError.
func NewInstallError(component, path string, err error) error {
	return &InstallError{Component: component, Path: path, Err: err}
}

func (e *InstallError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("install error: component %s: %s: %v", e.Component, e.Path, e.Err)
	}
	return fmt.Sprintf("install error: component %s: %v", e.Component, e.Err)
}

// Unwrap exposes the root error.
func (e *InstallError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
