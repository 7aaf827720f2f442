package transport

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dhartisetu/setu/pkg/constants"
	"github.com/dhartisetu/setu/pkg/errors"
	"github.com/dhartisetu/setu/pkg/logging"
	"github.com/dhartisetu/setu/pkg/response"
)

// RequestHook runs before the exchange. A non-nil error aborts the call
// and is handed to the error hooks.
type RequestHook func(ctx context.Context, call *Call) error

// ErrorHook sees a failed call. Returning a nil error resolves the call
// with the returned response; returning an error passes it (possibly
// rewritten) to the next hook.
type ErrorHook func(ctx context.Context, call *Call, err error) (response.Response, error)

// Middleware is one stage of the gateway pipeline. Either hook may be nil.
type Middleware struct {
	Name      string
	OnRequest RequestHook
	OnError   ErrorHook
}

// RequestID tags every call with the context's request ID, or a fresh UUID,
// and sends it as X-Request-ID.
func RequestID() Middleware {
	return Middleware{
		Name: "request-id",
		OnRequest: func(ctx context.Context, call *Call) error {
			call.ID = logging.RequestID(ctx)
			if call.ID == "" {
				call.ID = uuid.NewString()
			}
			if call.Request != nil && call.Request.Header.Get(constants.HeaderRequestID) == "" {
				call.Request.Header.Set(constants.HeaderRequestID, call.ID)
			}
			return nil
		},
	}
}

// Logging emits exactly one "[API] METHOD URL" line per call, before the
// exchange. It is written at info but bypasses level filtering; only a
// disabled logger drops it.
func Logging(logger *zerolog.Logger) Middleware {
	return Middleware{
		Name: "logging",
		OnRequest: func(_ context.Context, call *Call) error {
			logger.WithLevel(zerolog.NoLevel).
				Str(zerolog.LevelFieldName, zerolog.LevelInfoValue).
				Str("request_id", call.ID).
				Str("endpoint", call.Name).
				Str("method", call.Method).
				Str("url", call.URL()).
				Msg(fmt.Sprintf("%s %s %s", constants.LogPrefix, call.Method, call.URL()))
			return nil
		},
	}
}

// Normalize logs the failure and resolves it into the normalized failure shape.
// It never passes an error on.
func Normalize(logger *zerolog.Logger) Middleware {
	return Middleware{
		Name: "normalize",
		OnError: func(_ context.Context, call *Call, err error) (response.Response, error) {
			event := logger.Error().
				Str("request_id", call.ID).
				Str("method", call.Method).
				Str("url", call.URL())
			if call.StatusCode != 0 {
				event = event.Int("status", call.StatusCode)
			}
			if len(call.ResponseBody) > 0 && json.Valid(call.ResponseBody) {
				event = event.RawJSON("response", call.ResponseBody)
			} else {
				event = event.Err(err)
			}
			event.Msg("API Error")

			return response.Failure(MessageFor(err)), nil
		},
	}
}

// MessageFor derives the user-facing message of a failure: the backend's
// detail, then its message, then the error text, then "Server error".
func MessageFor(err error) string {
	var apiErr *errors.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return constants.ServerErrorMessage
}
