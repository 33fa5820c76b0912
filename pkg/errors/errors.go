// Package errors provides custom error types for the tabfuse system.
// These errors enable programmatic error checking with errors.Is/As and
// keep the configuration / format / validation failure classes distinct
// throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the tabfuse system
var (
	// ErrNoInputs indicates that no input tables were provided
	ErrNoInputs = errors.New("no input tables")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrKeyColumnMissing indicates that the entity key column is absent from a table
	ErrKeyColumnMissing = errors.New("key column missing")

	// ErrUnsupportedFormat indicates a file extension no codec is registered for
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrNotADirectory indicates that a discovery path is not a directory
	ErrNotADirectory = errors.New("not a directory")

	// ErrConflicts indicates that conflicting values were found between tables
	ErrConflicts = errors.New("conflicting values")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// ConfigError represents a configuration error. Configuration errors are
// fatal and reported before any table work begins.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// NewKeyColumnError creates a ConfigError for a table that lacks the key
// column. It wraps ErrKeyColumnMissing so errors.Is can detect the class.
func NewKeyColumnError(table, key string) *ConfigError {
	return &ConfigError{
		Component: table,
		Message:   fmt.Sprintf("key column %q not present", key),
		Err:       ErrKeyColumnMissing,
	}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// UnsupportedFormatError represents a file whose extension maps to no codec
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

// Error implements the error interface
func (e *UnsupportedFormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("unsupported file format %q for %s", e.Extension, e.Path)
	}
	return fmt.Sprintf("unsupported file format %q", e.Extension)
}

// Is implements errors.Is support
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// NewUnsupportedFormatError creates a new UnsupportedFormatError
func NewUnsupportedFormatError(path, extension string) *UnsupportedFormatError {
	return &UnsupportedFormatError{Path: path, Extension: extension}
}

// NotADirectoryError represents a discovery root that is not a directory
type NotADirectoryError struct {
	Path string
}

// Error implements the error interface
func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%s is not a directory", e.Path)
}

// Is implements errors.Is support
func (e *NotADirectoryError) Is(target error) bool {
	return target == ErrNotADirectory
}

// NewNotADirectoryError creates a new NotADirectoryError
func NewNotADirectoryError(path string) *NotADirectoryError {
	return &NotADirectoryError{Path: path}
}

// ParseError represents an error when decoding a tabular file
type ParseError struct {
	Format  string // "csv", "tsv", "xlsx"
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsConfig checks if an error is a configuration error
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict checks if an error reports conflicting values between tables
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflicts)
}

// IsUnsupportedFormat checks if an error is an unsupported format error
func IsUnsupportedFormat(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}

// IsNotADirectory checks if an error is a not-a-directory error
func IsNotADirectory(err error) bool {
	return errors.Is(err, ErrNotADirectory)
}

// IsKeyColumnMissing checks if an error reports an absent key column
func IsKeyColumnMissing(err error) bool {
	return errors.Is(err, ErrKeyColumnMissing)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapConfig wraps an error as a ConfigError
func WrapConfig(component string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Component: component, Message: err.Error(), Err: err}
}
