// Package errors provides custom error types for the setu client.
// These errors enable programmatic error checking across the transport
// tier (APIError, TimeoutError) and the call tier (ResponseError).
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is, As and Join re-export the standard library helpers so callers
// only need to import one errors package.
var (
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

// Common sentinel errors
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates that required configuration is missing
	ErrNotConfigured = errors.New("not configured")

	// ErrTimeout indicates that a request timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that a request was canceled by its context
	ErrCanceled = errors.New("operation canceled")

	// ErrServerError indicates the backend answered with a 5xx status
	ErrServerError = errors.New("server error")

	// ErrResponse indicates the backend (or the transport tier) produced a failed response
	ErrResponse = errors.New("failed response")
)

// APIError represents a non-2xx answer from the backend.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	// Detail is the backend's "detail" field (rendered to a string).
	Detail string
	// Message is the backend's "message" field.
	Message string
	// Body is the raw response body, kept for logging.
	Body []byte
}

// Error implements the error interface. The text mirrors what a browser
// HTTP client reports for a failed status so messages stay familiar.
func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if e.StatusCode >= 500 {
		return target == ErrServerError
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(method, url string, statusCode int) *APIError {
	return &APIError{Method: method, URL: url, StatusCode: statusCode}
}

// ResponseError is returned by action endpoints when the normalized
// response signals failure. Its text is the response's message verbatim.
type ResponseError struct {
	Endpoint string
	Message  string
}

// Error implements the error interface
func (e *ResponseError) Error() string {
	return e.Message
}

// Is implements errors.Is support
func (e *ResponseError) Is(target error) bool {
	return target == ErrResponse
}

// NewResponseError creates a new ResponseError
func NewResponseError(endpoint, message string) *ResponseError {
	return &ResponseError{Endpoint: endpoint, Message: message}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
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
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
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

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrNotConfigured
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// TimeoutError represents a request that exceeded its deadline
type TimeoutError struct {
	Operation string
	// Millis is the configured timeout in milliseconds.
	Millis int64
	Err    error
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout of %dms exceeded", e.Millis)
}

// Unwrap implements errors.Unwrap
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(operation string, millis int64, err error) *TimeoutError {
	return &TimeoutError{Operation: operation, Millis: millis, Err: err}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml"
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s parse error in %s: %s", e.Format, e.Source, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "close"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsServerError checks if an error came from a 5xx response
func IsServerError(err error) bool {
	return errors.Is(err, ErrServerError)
}

// IsResponseError checks if an error was raised from a failed response
func IsResponseError(err error) bool {
	return errors.Is(err, ErrResponse)
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, source string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, Source: source, Message: err.Error(), Err: err}
}

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}
