package appcontext

import (
	"bytes"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/dhartisetu/setu"
	"github.com/dhartisetu/setu/pkg/errors"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	ClientFunc       func() (*setu.Client, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string

	// Out collects command output when set; otherwise os.Stdout is used.
	Out *bytes.Buffer
	// In is returned by Stdin; nil means empty input.
	In io.Reader
}

// Client returns a client using the mock function, or a configuration error.
func (m *Mock) Client() (*setu.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return nil, errors.NewConfigError("client", "no client configured", nil)
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	nop := zerolog.Nop()
	return &nop
}

// OutputFormat returns the format using the mock function or "json".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "json"
}

// Stdout returns Out, or os.Stdout when Out is nil.
func (m *Mock) Stdout() io.Writer {
	if m.Out != nil {
		return m.Out
	}
	return os.Stdout
}

// Stdin returns In, or an empty reader.
func (m *Mock) Stdin() io.Reader {
	if m.In != nil {
		return m.In
	}
	return bytes.NewReader(nil)
}

// Version returns version using the mock function or "test".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}

// Commit returns "test".
func (m *Mock) Commit() string { return "test" }

// Date returns "test".
func (m *Mock) Date() string { return "test" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
