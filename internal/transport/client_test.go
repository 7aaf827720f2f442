package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhartisetu/setu/pkg/errors"
	"github.com/dhartisetu/setu/pkg/logging"
	"github.com/dhartisetu/setu/pkg/response"
)

// newTestGateway starts a server with handler and returns a gateway rooted at /api/v1.
func newTestGateway(t *testing.T, handler http.HandlerFunc, mw ...Middleware) (*Gateway, *logging.TestLogger) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tl := logging.NewTestLogger(t)
	gw, err := New(Config{
		BaseURL:    server.URL + "/api/v1",
		Logger:     tl.Logger,
		Middleware: mw,
	})
	require.NoError(t, err)
	return gw, tl
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		gw, err := New(Config{BaseURL: "https://backend.example/api/v1/"})
		require.NoError(t, err)

		assert.Equal(t, "https://backend.example/api/v1", gw.BaseURL())
		assert.Equal(t, 120*time.Second, gw.Timeout())
		assert.Equal(t, "application/json", gw.Headers()["Content-Type"])
	})

	t.Run("custom headers and timeout", func(t *testing.T) {
		gw, err := New(Config{
			BaseURL: "http://localhost:8000/api/v1",
			Timeout: 5 * time.Second,
			Headers: map[string]string{"X-Client": "setu"},
		})
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, gw.Timeout())
		assert.Equal(t, "setu", gw.Headers()["X-Client"])
	})

	for _, base := range []string{"", "undefined/api/v1", "/api/v1", "ftp://host/api/v1"} {
		t.Run("rejects "+base, func(t *testing.T) {
			_, err := New(Config{BaseURL: base})
			require.Error(t, err)
			assert.True(t, errors.IsConfigError(err))
		})
	}
}

func TestSendSuccessPassesBodyThrough(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/plant-disease/detect-base64", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hi", body["language"])

		w.Write([]byte(`{"result":"healthy_leaf","confidence":0.92}`))
	})

	resp := gw.Send(context.Background(), &Request{
		Method: http.MethodPost,
		Path:   "/plant-disease/detect-base64",
		Body:   map[string]string{"image_data": "aGVsbG8=", "language": "hi"},
	})

	assert.Equal(t, response.Response{"result": "healthy_leaf", "confidence": 0.92}, resp)
}

func TestSendNormalizesFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{
			name:    "detail preferred",
			status:  http.StatusInternalServerError,
			body:    `{"detail":"model unavailable","message":"ignored"}`,
			message: "model unavailable",
		},
		{
			name:    "message when no detail",
			status:  http.StatusBadRequest,
			body:    `{"message":"latitude out of range"}`,
			message: "latitude out of range",
		},
		{
			name:    "empty detail falls through",
			status:  http.StatusBadRequest,
			body:    `{"detail":"","message":"bad soil sample"}`,
			message: "bad soil sample",
		},
		{
			name:    "structured detail rendered as JSON",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail":[{"loc":["body","ph"],"msg":"field required"}]}`,
			message: `[{"loc":["body","ph"],"msg":"field required"}]`,
		},
		{
			name:    "non JSON body uses status text",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			message: "request failed with status code 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, tl := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			resp := gw.Send(context.Background(), &Request{Method: http.MethodPost, Path: "/flood/predict", Body: map[string]any{}})

			assert.Equal(t, response.Failure(tt.message), resp)
			tl.AssertContains(t, "API Error")
		})
	}
}

func TestSendUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	gw, err := New(Config{BaseURL: url + "/api/v1", Logger: logging.NewNopLogger()})
	require.NoError(t, err)

	resp := gw.Send(context.Background(), &Request{Method: http.MethodGet, Path: "/location/states"})

	require.True(t, resp.IsError())
	assert.Equal(t, false, resp["success"])
	assert.Nil(t, resp["data"])
	assert.NotEmpty(t, resp.Message())
}

func TestSendTimeout(t *testing.T) {
	release := make(chan struct{})
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	resp := gw.Send(context.Background(), &Request{
		Method:  http.MethodPost,
		Path:    "/rainfall/predict",
		Body:    map[string]any{"month": 7},
		Timeout: 50 * time.Millisecond,
	})

	assert.Equal(t, response.Failure("timeout of 50ms exceeded"), resp)
}

func TestSendLogsOneLinePerCall(t *testing.T) {
	var hits atomic.Int32
	gw, tl := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"states":["Kerala"]}`))
	})

	gw.Send(context.Background(), &Request{Method: http.MethodGet, Path: "/location/states"})
	gw.Send(context.Background(), &Request{Method: http.MethodPost, Path: "/crop/recommend", Body: map[string]any{}})

	lines := tl.LinesContaining("[API]")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[API] GET "+gw.BaseURL()+"/location/states")
	assert.Contains(t, lines[1], "[API] POST "+gw.BaseURL()+"/crop/recommend")
}

func TestSendRequestLineIgnoresLogLevel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"seasons":["Rabi"]}`))
	}))
	t.Cleanup(server.Close)

	tl := logging.NewTestLogger(t)
	quiet := tl.Logger.Level(zerolog.ErrorLevel)
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	gw, err := New(Config{BaseURL: server.URL + "/api/v1", Logger: &quiet})
	require.NoError(t, err)

	resp := gw.Send(context.Background(), &Request{Method: http.MethodGet, Path: "/yield/seasons"})
	assert.False(t, resp.IsError())
	assert.Len(t, tl.LinesContaining("[API] GET "+gw.BaseURL()+"/yield/seasons"), 1)
}

func TestSendLogsEvenWhenBodyCannotBeEncoded(t *testing.T) {
	var hits atomic.Int32
	gw, tl := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	resp := gw.Send(context.Background(), &Request{
		Method: http.MethodPost,
		Path:   "/water/calculate",
		Body:   map[string]any{"bad": make(chan int)},
	})

	assert.True(t, resp.IsError())
	assert.Contains(t, resp.Message(), "json parse error")
	assert.Len(t, tl.LinesContaining("[API] POST"), 1)
	assert.Zero(t, hits.Load())
}

func TestSendRejectsUnsupportedMethod(t *testing.T) {
	gw, tl := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the server")
	})

	resp := gw.Send(context.Background(), &Request{Method: http.MethodDelete, Path: "/crop/recommend"})

	assert.True(t, resp.IsError())
	assert.Len(t, tl.LinesContaining("[API] DELETE"), 1)
}

func TestSendMultipart(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "hi", r.FormValue("language"))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "leaf.jpg", header.Filename)
		assert.Equal(t, "jpeg-bytes", string(data))

		w.Write([]byte(`{"disease":"early_blight"}`))
	})

	form := NewForm().
		AddFile("file", "leaf.jpg", strings.NewReader("jpeg-bytes")).
		AddField("language", "hi")

	resp := gw.Send(context.Background(), &Request{Method: http.MethodPost, Path: "/plant-disease/detect", Body: form})
	assert.Equal(t, response.Response{"disease": "early_blight"}, resp)
}

func TestSendDecodesNonObjectBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
		want response.Response
	}{
		{name: "empty body", body: "", want: response.Response{}},
		{name: "array", body: `["rice","wheat"]`, want: response.Response{"data": []any{"rice", "wheat"}}},
		{name: "null", body: `null`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			resp := gw.Send(context.Background(), &Request{Method: http.MethodGet, Path: "/yield/crops"})
			assert.Equal(t, tt.want, resp)
		})
	}
}

func TestSendInvalidJSONSuccessBody(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	resp := gw.Send(context.Background(), &Request{Method: http.MethodGet, Path: "/yield/seasons"})
	assert.True(t, resp.IsError())
	assert.Contains(t, resp.Message(), "json parse error")
}

func TestCustomMiddleware(t *testing.T) {
	var seen []string
	record := Middleware{
		Name: "record",
		OnRequest: func(_ context.Context, call *Call) error {
			seen = append(seen, "request "+call.Path)
			call.Request.Header.Set("X-Trace", "on")
			return nil
		},
		OnError: func(_ context.Context, call *Call, err error) (response.Response, error) {
			seen = append(seen, "error "+call.Path)
			return nil, err
		},
	}

	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "on", r.Header.Get("X-Trace"))
		w.WriteHeader(http.StatusServiceUnavailable)
	}, record)

	resp := gw.Send(context.Background(), &Request{Method: http.MethodGet, Path: "/location/subdivisions"})

	assert.Equal(t, []string{"request /location/subdivisions", "error /location/subdivisions"}, seen)
	assert.Equal(t, response.Failure("request failed with status code 503"), resp)
}

func TestMessageFor(t *testing.T) {
	assert.Equal(t, "Server error", MessageFor(nil))
	assert.Equal(t, "Server error", MessageFor(errors.New("")))
	assert.Equal(t, "boom", MessageFor(errors.New("boom")))
	assert.Equal(t, "detail", MessageFor(&errors.APIError{StatusCode: 500, Detail: "detail", Message: "msg"}))
	assert.Equal(t, "msg", MessageFor(&errors.APIError{StatusCode: 500, Message: "msg"}))
}

func TestRequestIDFromContext(t *testing.T) {
	gw, tl := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{}`))
	})

	ctx := logging.WithRequestID(context.Background(), "req-42")
	gw.Send(ctx, &Request{Name: "location.states", Method: http.MethodGet, Path: "/location/states"})

	tl.AssertContains(t, `"request_id":"req-42"`)
	tl.AssertContains(t, `"endpoint":"location.states"`)
}
