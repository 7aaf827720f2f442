package setu

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhartisetu/setu/pkg/errors"
	"github.com/dhartisetu/setu/pkg/logging"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "en"},
		{in: "  ", want: "en"},
		{in: "hi", want: "hi"},
		{in: " iw ", want: "iw"},
		{in: "en_US", want: "en_US"},
		{in: "hindi", want: "hindi"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLanguage(tt.in), "NormalizeLanguage(%q)", tt.in)
	}
}

func TestValidLanguage(t *testing.T) {
	for _, lang := range []string{"en", "hi", "ta-IN", "iw", "tl"} {
		assert.True(t, ValidLanguage(lang), lang)
	}
	for _, lang := range []string{"hindi", "x", "??"} {
		assert.False(t, ValidLanguage(lang), lang)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaf.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg bytes"), 0o644))

	f, err := OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, "leaf.jpg", f.Name)

	data, err := io.ReadAll(f.Reader)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
	assert.NoError(t, f.Close())
}

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "absent.jpg"))

	var ioErr *errors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Operation)
}

func TestNewFileClose(t *testing.T) {
	f := NewFile("soil.png", strings.NewReader("png"))
	assert.NoError(t, f.Close())

	var nilFile *File
	assert.NoError(t, nilFile.Close())
}

func TestUploadFormRequiresFile(t *testing.T) {
	client, err := New(WithBaseURL("https://backend.example"), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	_, err = client.uploadForm(nil, "en")
	assert.True(t, errors.IsValidationError(err))

	_, err = client.uploadForm(&File{Name: "x.jpg"}, "en")
	assert.True(t, errors.IsValidationError(err))
}
