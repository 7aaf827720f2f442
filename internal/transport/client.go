package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dhartisetu/setu/pkg/constants"
	"github.com/dhartisetu/setu/pkg/errors"
	"github.com/dhartisetu/setu/pkg/logging"
	"github.com/dhartisetu/setu/pkg/response"
)

// DefaultHTTPTimeout is the default timeout for backend requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Config configures a Gateway. It is copied by New and never read again.
type Config struct {
	// BaseURL is the full API root, including the version prefix.
	BaseURL string
	// Timeout applies to every request unless the request overrides it.
	Timeout time.Duration
	// Headers are sent with every request. Content-Type defaults to JSON.
	Headers map[string]string
	// HTTPClient performs the exchange. Defaults to a client without its own timeout.
	HTTPClient *http.Client
	// Logger receives the request and error log lines.
	Logger *zerolog.Logger
	// Middleware runs after the request-ID and logging stages and before
	// normalization.
	Middleware []Middleware
}

// Gateway is the single point of outbound communication with the backend.
// It is immutable after New and safe for concurrent use.
type Gateway struct {
	baseURL string
	timeout time.Duration
	headers http.Header
	http    *http.Client
	logger  *zerolog.Logger
	chain   []Middleware
}

// New validates the configuration and builds a Gateway.
func New(cfg Config) (*Gateway, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	headers := http.Header{}
	headers.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	headers.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	for k, v := range cfg.Headers {
		headers.Set(k, v)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	chain := []Middleware{RequestID(), Logging(logger)}
	chain = append(chain, cfg.Middleware...)
	chain = append(chain, Normalize(logger))

	return &Gateway{
		baseURL: baseURL,
		timeout: timeout,
		headers: headers,
		http:    httpClient,
		logger:  logger,
		chain:   chain,
	}, nil
}

// BaseURL returns the API root every path is appended to.
func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// Timeout returns the default per-request timeout.
func (g *Gateway) Timeout() time.Duration {
	return g.timeout
}

// CloseIdleConnections closes keep-alive connections held by the HTTP client.
func (g *Gateway) CloseIdleConnections() {
	g.http.CloseIdleConnections()
}

// Send performs one request and always resolves to a response: the decoded
// body on success, or a normalized failure otherwise. It never returns an error.
//
// A JSON object body is returned as is. Any other JSON value is wrapped as
// {"data": value}, so a 2xx body of ["Bihar","Goa"] becomes
// {"data": ["Bihar","Goa"]}. A JSON null yields a nil response and an empty
// body an empty one.
func (g *Gateway) Send(ctx context.Context, r *Request) response.Response {
	timeout := g.timeout
	if r.Timeout > 0 {
		timeout = r.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	call := &Call{
		Name:    r.Name,
		Method:  strings.ToUpper(r.Method),
		BaseURL: g.baseURL,
		Path:    r.Path,
		Timeout: timeout,
		Started: time.Now(),
	}

	err := g.prepare(ctx, call, r)
	for _, mw := range g.chain {
		if mw.OnRequest == nil {
			continue
		}
		if hookErr := mw.OnRequest(ctx, call); hookErr != nil && err == nil {
			err = hookErr
		}
	}

	if err == nil {
		var resp response.Response
		if resp, err = g.do(ctx, call); err == nil {
			return resp
		}
	}
	return g.resolve(ctx, call, err)
}

// prepare builds call.Request. On failure call.Request may be nil but the
// call still flows through the middleware so it is logged.
func (g *Gateway) prepare(ctx context.Context, call *Call, r *Request) error {
	if call.Method != http.MethodGet && call.Method != http.MethodPost {
		return errors.NewValidationError("method", r.Method, "only GET and POST are supported")
	}

	body, contentType, encErr := encodeBody(r.Body)

	req, err := http.NewRequestWithContext(ctx, call.Method, call.URL(), body)
	if err != nil {
		return errors.WrapValidation("path", err)
	}
	req.Header = g.headers.Clone()
	if contentType != "" {
		req.Header.Set(constants.HeaderContentType, contentType)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	call.Request = req
	return encErr
}

// do performs the exchange and decodes the body.
func (g *Gateway) do(ctx context.Context, call *Call) (response.Response, error) {
	resp, err := g.http.Do(call.Request)
	if err != nil {
		return nil, classify(ctx, call, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			g.logger.Warn().Err(cerr).Msg("failed to close response body")
		}
	}()

	call.StatusCode = resp.StatusCode
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(ctx, call, errors.WrapIO("read", "response body", err))
	}
	call.ResponseBody = body

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(call, body)
	}
	return decodeBody(body)
}

// resolve runs the error hooks in order until one resolves the failure.
func (g *Gateway) resolve(ctx context.Context, call *Call, err error) response.Response {
	for _, mw := range g.chain {
		if mw.OnError == nil {
			continue
		}
		resp, next := mw.OnError(ctx, call, err)
		if next == nil {
			return resp
		}
		err = next
	}
	return response.Failure(MessageFor(err))
}

// validateBaseURL rejects empty or relative base URLs up front.
func validateBaseURL(baseURL string) error {
	if baseURL == "" {
		return errors.NewConfigError("gateway", "base URL is not set", nil)
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return errors.NewConfigError("gateway", "base URL is invalid", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.NewConfigError("gateway", "base URL must be an absolute http(s) URL: "+baseURL, nil)
	}
	return nil
}

// Headers returns a copy of the default headers.
func (g *Gateway) Headers() map[string]string {
	out := make(map[string]string, len(g.headers))
	for k := range g.headers {
		out[k] = g.headers.Get(k)
	}
	return out
}
