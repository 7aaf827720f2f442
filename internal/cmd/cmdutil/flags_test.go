package cmdutil

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhartisetu/setu"
	"github.com/dhartisetu/setu/internal/appcontext"
	"github.com/dhartisetu/setu/pkg/errors"
	"github.com/dhartisetu/setu/pkg/logging"
)

// newMock returns an app context whose client talks to handler.
func newMock(t *testing.T, handler http.HandlerFunc) *appcontext.Mock {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := setu.New(setu.WithBaseURL(server.URL), setu.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	return &appcontext.Mock{
		ClientFunc: func() (*setu.Client, error) { return client, nil },
		Out:        &bytes.Buffer{},
	}
}

func TestDataFlagsBody(t *testing.T) {
	app := &appcontext.Mock{In: strings.NewReader(`{"crop":"rice"}`)}
	flags := &DataFlags{Data: "-", Set: []string{"area=2"}}

	body, err := flags.Body(app)
	require.NoError(t, err)
	assert.Equal(t, "rice", body["crop"])
	assert.EqualValues(t, 2, body["area"])
}

func TestActionCommand(t *testing.T) {
	got := make(chan string, 1)
	app := newMock(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got <- r.URL.Path + " " + string(b)
		_, _ = io.WriteString(w, `{"price":2150}`)
	})

	cmd := NewActionCommand(app, "price", "Predict price",
		func(ctx context.Context, c *setu.Client, body map[string]any) (setu.Response, error) {
			return c.Market().PredictPrice(ctx, body)
		})
	cmd.SetArgs([]string{"--set", "crop=Onion"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Equal(t, `/api/v1/price/predict {"crop":"Onion"}`, <-got)
	assert.JSONEq(t, `{"price":2150}`, app.Out.String())
}

func TestActionCommandWithoutClient(t *testing.T) {
	app := &appcontext.Mock{Out: &bytes.Buffer{}}
	cmd := NewActionCommand(app, "price", "Predict price",
		func(ctx context.Context, c *setu.Client, body map[string]any) (setu.Response, error) {
			return c.Market().PredictPrice(ctx, body)
		})
	cmd.SetArgs([]string{})

	err := cmd.ExecuteContext(context.Background())
	assert.True(t, errors.IsConfigError(err))
}

func TestLookupCommand(t *testing.T) {
	app := newMock(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	cmd := NewLookupCommand(app, "seasons", "List seasons", Seasons)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.JSONEq(t, `{"seasons":[]}`, app.Out.String())
}
