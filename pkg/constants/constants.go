// Package constants provides shared constants used throughout the setu codebase.
// This includes timeouts, route prefixes, header names and the environment
// variables the client reads its configuration from.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the per-request timeout for backend calls.
	// Image inference on the backend can take well over a minute.
	DefaultHTTPTimeout = 120 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// ShutdownTimeout bounds graceful shutdown of the CLI
	ShutdownTimeout = 5 * time.Second
)

// Route constants
const (
	// APIVersionPrefix is appended to the configured server URL to form the base URL
	APIVersionPrefix = "/api/v1"
)

// Request defaults
const (
	// DefaultLanguage is sent with uploads when the caller gives no language
	DefaultLanguage = "en"

	// UnknownLocation is the placeholder used by the reverse geocoding fallback
	UnknownLocation = "Unknown"

	// ServerErrorMessage is the last-resort message of a normalized failure
	ServerErrorMessage = "Server error"

	// GenericErrorMessage is raised when a failed response carries no message
	GenericErrorMessage = "API Error"

	// LogPrefix prefixes the per-request log line
	LogPrefix = "[API]"
)

// Header constants
const (
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderRequestID   = "X-Request-ID"
	ContentTypeJSON   = "application/json"
)

// Environment variable names
const (
	// EnvAPIURL holds the backend server URL (without the /api/v1 prefix)
	EnvAPIURL = "SETU_API_URL"

	// EnvLegacyAPIURL is the variable name used by the web frontend build
	EnvLegacyAPIURL = "VITE_API_URL"

	// EnvTimeout overrides DefaultHTTPTimeout (Go duration syntax)
	EnvTimeout = "SETU_TIMEOUT"
)

// File permission constants
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
