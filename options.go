package setu

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/dhartisetu/setu/internal/transport"
	"github.com/dhartisetu/setu/pkg/errors"
)

// Middleware is one stage of the request pipeline; see WithMiddleware.
type Middleware = transport.Middleware

// Call is the per-request state middleware hooks receive.
type Call = transport.Call

// Option is a function that configures a Client
type Option func(*options) error

// options holds the values collected from Option functions.
type options struct {
	serverURL  string
	configFile string
	timeout    time.Duration
	headers    map[string]string
	httpClient *http.Client
	logger     *zerolog.Logger
	middleware []transport.Middleware
}

// WithBaseURL sets the backend server URL. The /api/v1 prefix is appended.
func WithBaseURL(url string) Option {
	return func(o *options) error {
		o.serverURL = url
		return nil
	}
}

// WithConfigFile reads configuration from the given YAML file instead of ~/.setu.yaml.
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configFile = path
		return nil
	}
}

// WithTimeout overrides the 120 second default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout <= 0 {
			return errors.NewValidationError("timeout", timeout, "must be positive")
		}
		o.timeout = timeout
		return nil
	}
}

// WithHeader adds a default header sent with every request.
func WithHeader(key, value string) Option {
	return func(o *options) error {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) error {
		o.httpClient = client
		return nil
	}
}

// WithLogger sets the logger that receives request and error lines
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithMiddleware adds gateway middleware. It runs after request logging
// and before failure normalization, in the order given.
func WithMiddleware(mw ...Middleware) Option {
	return func(o *options) error {
		o.middleware = append(o.middleware, mw...)
		return nil
	}
}
