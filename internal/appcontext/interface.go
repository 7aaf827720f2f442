// Package appcontext provides the shared application context interface
// used by all commands, so command packages depend on one small interface
// instead of the concrete App.
package appcontext

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/dhartisetu/setu"
)

// Interface defines what commands need from the application.
// The App struct from cmd/setu/app implements it.
type Interface interface {
	// Client returns the API client, creating it on first use.
	// Creation fails when no backend URL is configured.
	Client() (*setu.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	// Empty means auto-detect.
	OutputFormat() string

	// Stdout is where command results are written.
	Stdout() io.Writer

	// Stdin is read by commands given "-" as a payload.
	Stdin() io.Reader

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
