package setu

import (
	"context"
	"net/http"

	"github.com/dhartisetu/setu/internal/transport"
	"github.com/dhartisetu/setu/pkg/constants"
	"github.com/dhartisetu/setu/pkg/errors"
	"github.com/dhartisetu/setu/pkg/response"
)

// PolicyKind tags how an endpoint unwraps its response.
type PolicyKind int

const (
	// ThrowOnErrorKind returns an error for any failed response.
	ThrowOnErrorKind PolicyKind = iota
	// FallbackOnErrorKind substitutes a default value for any failure.
	FallbackOnErrorKind
)

// String implements fmt.Stringer.
func (k PolicyKind) String() string {
	if k == FallbackOnErrorKind {
		return "fallback"
	}
	return "throw"
}

// Policy is the unwrap policy declared by an endpoint.
type Policy struct {
	kind     PolicyKind
	fallback response.Response
}

// ThrowOnError is the policy of action endpoints.
var ThrowOnError = Policy{kind: ThrowOnErrorKind}

// FallbackOnError is the policy of lookup endpoints; def is returned
// (as a fresh copy) whenever the call fails.
func FallbackOnError(def response.Response) Policy {
	return Policy{kind: FallbackOnErrorKind, fallback: def}
}

// Kind returns the policy tag.
func (p Policy) Kind() PolicyKind {
	return p.kind
}

// Fallback returns a copy of the default value, or nil for ThrowOnError.
func (p Policy) Fallback() response.Response {
	return p.fallback.Clone()
}

// Unwrap applies the policy to the outcome of one call. err is set when the
// call failed before a request could be sent.
//
// ThrowOnError returns err, or a *errors.ResponseError carrying the response
// message (or "API Error") when the response is absent or flagged as an
// error. FallbackOnError never returns an error.
func (p Policy) Unwrap(endpoint string, resp response.Response, err error) (response.Response, error) {
	failed := err != nil || resp.IsError()

	if p.kind == FallbackOnErrorKind {
		if failed {
			return p.fallback.Clone(), nil
		}
		return resp, nil
	}

	if err != nil {
		return nil, err
	}
	if failed {
		msg := resp.Message()
		if msg == "" {
			msg = constants.GenericErrorMessage
		}
		return nil, errors.NewResponseError(endpoint, msg)
	}
	return resp, nil
}

// Endpoint describes one backend route. Endpoints are declared once in the
// route table and never change.
type Endpoint struct {
	// Name is "group.operation", used in logs and errors.
	Name   string
	Method string
	Path   string
	Policy Policy
}

// call sends body to ep and applies its policy.
func (c *Client) call(ctx context.Context, ep Endpoint, body any) (response.Response, error) {
	resp := c.gateway.Send(ctx, &transport.Request{
		Name:   ep.Name,
		Method: ep.Method,
		Path:   ep.Path,
		Body:   body,
	})
	return ep.Policy.Unwrap(ep.Name, resp, nil)
}

// lookup calls a fallback endpoint; the error is always nil by policy.
func (c *Client) lookup(ctx context.Context, ep Endpoint, body any) response.Response {
	resp, _ := c.call(ctx, ep, body)
	return resp
}

// get and post keep the route table terse.
func get(name, path string, policy Policy) Endpoint {
	return Endpoint{Name: name, Method: http.MethodGet, Path: path, Policy: policy}
}

func post(name, path string, policy Policy) Endpoint {
	return Endpoint{Name: name, Method: http.MethodPost, Path: path, Policy: policy}
}
