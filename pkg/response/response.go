// Package response defines the normalized response value every backend call
// produces. A successful call yields the decoded JSON body unchanged; a failed
// one yields the uniform failure shape built by Failure.
package response

import (
	"encoding/json"

	"github.com/dhartisetu/setu/pkg/errors"
)

// Field names of the failure shape.
const (
	FieldSuccess = "success"
	FieldError   = "error"
	FieldMessage = "message"
	FieldData    = "data"
	FieldDetail  = "detail"
)

// Response is a decoded JSON object returned by the backend, or a
// normalized failure synthesized by the transport tier. A backend body that
// is not an object, such as a bare array, arrives under the "data" key.
type Response map[string]any

// Failure builds the normalized failure shape
// {success: false, error: true, message: message, data: null}.
func Failure(message string) Response {
	return Response{
		FieldSuccess: false,
		FieldError:   true,
		FieldMessage: message,
		FieldData:    nil,
	}
}

// IsError reports whether the response is absent or flagged as an error.
// Any truthy "error" value counts: true, a non-empty string, a non-zero
// number, or an object or list.
func (r Response) IsError() bool {
	if r == nil {
		return true
	}
	switch v := r[FieldError].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return true
	}
}

// Success reports the backend's success flag. Bodies without the flag
// count as successful unless they are flagged as errors.
func (r Response) Success() bool {
	if r.IsError() {
		return false
	}
	if flag, ok := r[FieldSuccess].(bool); ok {
		return flag
	}
	return true
}

// Message returns the message field when it is a non-empty string.
func (r Response) Message() string {
	msg, _ := r[FieldMessage].(string)
	return msg
}

// Data returns the data field.
func (r Response) Data() any {
	return r[FieldData]
}

// Decode converts the response into a typed value by round-tripping through JSON.
func (r Response) Decode(v any) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return errors.WrapParse("json", "response", err)
	}
	return errors.WrapParse("json", "response", json.Unmarshal(raw, v))
}

// Clone returns a shallow copy. Fallback defaults are cloned on every use
// so callers never share a map.
func (r Response) Clone() Response {
	if r == nil {
		return nil
	}
	out := make(Response, len(r))
	for k, v := range r {
		if list, ok := v.([]any); ok {
			v = append([]any{}, list...)
		}
		out[k] = v
	}
	return out
}
