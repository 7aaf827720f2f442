package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"time"

	"github.com/dhartisetu/setu/pkg/errors"
	"github.com/dhartisetu/setu/pkg/response"
)

// Request describes one backend call.
type Request struct {
	// Name identifies the endpoint in logs, e.g. "crop.recommend".
	Name string
	// Method is GET or POST.
	Method string
	// Path is relative to the gateway base URL, e.g. "/crop/recommend".
	Path string
	// Body is nil, a *Form, raw JSON bytes, or any JSON-serializable value.
	Body any
	// Headers override the gateway defaults for this request only.
	Headers map[string]string
	// Timeout overrides the gateway timeout when positive.
	Timeout time.Duration
}

// Call is the per-request state passed through the middleware chain.
type Call struct {
	ID      string
	Name    string
	Method  string
	BaseURL string
	Path    string
	Timeout time.Duration
	Started time.Time

	// Request is nil when the request could not be built.
	Request *http.Request

	StatusCode   int
	ResponseBody []byte
}

// URL returns the composed request URL.
func (c *Call) URL() string {
	return c.BaseURL + c.Path
}

// Form is a multipart/form-data payload.
type Form struct {
	parts []formPart
}

type formPart struct {
	name     string
	value    string
	filename string
	reader   io.Reader
}

// NewForm creates an empty multipart form.
func NewForm() *Form {
	return &Form{}
}

// AddField appends a plain text field.
func (f *Form) AddField(name, value string) *Form {
	f.parts = append(f.parts, formPart{name: name, value: value})
	return f
}

// AddFile appends a file field read from r.
func (f *Form) AddFile(name, filename string, r io.Reader) *Form {
	f.parts = append(f.parts, formPart{name: name, filename: filename, reader: r})
	return f
}

// encode writes the form and returns it with its boundary content type.
func (f *Form) encode() (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, p := range f.parts {
		if p.reader == nil {
			if err := w.WriteField(p.name, p.value); err != nil {
				return nil, "", errors.WrapIO("write", "form field "+p.name, err)
			}
			continue
		}
		part, err := w.CreateFormFile(p.name, p.filename)
		if err != nil {
			return nil, "", errors.WrapIO("write", "form file "+p.name, err)
		}
		if _, err := io.Copy(part, p.reader); err != nil {
			return nil, "", errors.WrapIO("read", p.filename, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.WrapIO("close", "multipart writer", err)
	}
	return buf, w.FormDataContentType(), nil
}

// encodeBody serializes a request body. The returned content type is empty
// when the default JSON header applies.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *Form:
		return b.encode()
	case []byte:
		return bytes.NewReader(b), "", nil
	case json.RawMessage:
		return bytes.NewReader(b), "", nil
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, "", errors.WrapParse("json", "request body", err)
		}
		return bytes.NewReader(raw), "", nil
	}
}

// decodeBody decodes a 2xx body. Objects pass through unchanged, JSON null
// yields a nil response and any other JSON value is wrapped under "data".
func decodeBody(body []byte) (response.Response, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return response.Response{}, nil
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.WrapParse("json", "response body", err)
	}

	switch v := decoded.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return response.Response(v), nil
	default:
		return response.Response{response.FieldData: v}, nil
	}
}

// newAPIError builds an APIError, lifting "detail" and "message" out of a JSON body.
func newAPIError(call *Call, body []byte) *errors.APIError {
	apiErr := errors.NewAPIError(call.Method, call.URL(), call.StatusCode)
	apiErr.Body = body

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return apiErr
	}
	apiErr.Detail = stringify(fields[response.FieldDetail])
	apiErr.Message = stringify(fields[response.FieldMessage])
	return apiErr
}

// stringify renders a JSON value as message text. Non-string values such as
// validation error lists are rendered as compact JSON.
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}

// classify maps transport errors onto the typed errors of pkg/errors.
func classify(ctx context.Context, call *Call, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return errors.NewTimeoutError(call.Method+" "+call.Path, call.Timeout.Milliseconds(), err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", errors.ErrCanceled, err)
	default:
		return err
	}
}
