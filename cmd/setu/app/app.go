// Package app provides the application context and dependency management
// for the setu CLI. It centralizes configuration, logging and the API
// client, and hands them to commands through appcontext.Interface.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dhartisetu/setu"
	"github.com/dhartisetu/setu/internal/appcontext"
	"github.com/dhartisetu/setu/pkg/errors"
)

// App represents the setu application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	stdout io.Writer
	stdin  io.Reader

	// API client (lazy-initialized, singleton)
	mu     sync.Mutex
	client *setu.Client
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdout:  os.Stdout,
		stdin:   os.Stdin,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.NewConfigError("app", "load config", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the --format value; empty means auto-detect.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Stdout returns the writer command results go to.
func (a *App) Stdout() io.Writer {
	return a.stdout
}

// Stdin returns the reader "-" payloads are read from.
func (a *App) Stdin() io.Reader {
	return a.stdin
}

// Client returns the API client, creating it on first use from the
// configured URL and timeout. It is safe for concurrent use.
func (a *App) Client() (*setu.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	client, err := setu.New(a.clientOptions()...)
	if err != nil {
		return nil, err
	}
	a.client = client
	return client, nil
}

// Shutdown releases the client's idle connections.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	client := a.client
	a.mu.Unlock()

	if client != nil {
		client.CloseIdleConnections()
	}
	return nil
}

// clientOptions constructs client options from the app configuration.
func (a *App) clientOptions() []setu.Option {
	opts := []setu.Option{
		setu.WithLogger(a.logger),
		setu.WithConfigFile(a.config.ConfigFile),
		setu.WithHeader("User-Agent", "setu-cli/"+a.version),
	}
	if a.config.APIURL != "" {
		opts = append(opts, setu.WithBaseURL(a.config.APIURL))
	}
	if a.config.Timeout > 0 {
		opts = append(opts, setu.WithTimeout(a.config.Timeout))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom API client (useful for testing).
func WithClient(client *setu.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}

// WithIO redirects command input and output (useful for testing).
func WithIO(stdin io.Reader, stdout io.Writer) Option {
	return func(a *App) error {
		a.stdin = stdin
		a.stdout = stdout
		return nil
	}
}
