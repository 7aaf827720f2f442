package setu

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/dhartisetu/setu/internal/transport"
	"github.com/dhartisetu/setu/pkg/constants"
	"github.com/dhartisetu/setu/pkg/errors"
)

// Multipart field names used by the upload endpoints.
const (
	FieldFile     = "file"
	FieldLanguage = "language"
)

// File is an image to upload. Reader is consumed once, by the first call
// that uses the File.
type File struct {
	Name   string
	Reader io.Reader

	closer io.Closer
}

// NewFile wraps a reader as an upload. name is the filename sent to the server.
func NewFile(name string, r io.Reader) *File {
	return &File{Name: name, Reader: r}
}

// OpenFile opens path for upload. Callers must Close the returned File.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	return &File{Name: filepath.Base(path), Reader: f, closer: f}, nil
}

// Close releases the underlying file, if OpenFile opened one.
func (f *File) Close() error {
	if f == nil || f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

// NormalizeLanguage trims lang and defaults an empty value to English.
// Anything else is sent to the server as given.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return constants.DefaultLanguage
	}
	return lang
}

// ValidLanguage reports whether lang parses as a BCP 47 tag.
func ValidLanguage(lang string) bool {
	_, err := language.Parse(lang)
	return err == nil
}

// languageField resolves the language field of a request. The backend decides
// what it accepts, so an unparseable tag is only logged.
func (c *Client) languageField(lang string) string {
	lang = NormalizeLanguage(lang)
	if !ValidLanguage(lang) {
		c.logger.Warn().
			Str("language", lang).
			Msg("language is not a BCP 47 tag, sending it unchanged")
	}
	return lang
}

// uploadForm builds the multipart body shared by Detect and DetectType.
func (c *Client) uploadForm(file *File, lang string) (*transport.Form, error) {
	if file == nil || file.Reader == nil {
		return nil, errors.NewValidationError(FieldFile, nil, "file is required")
	}
	name := file.Name
	if name == "" {
		name = "upload"
	}
	return transport.NewForm().
		AddFile(FieldFile, name, file.Reader).
		AddField(FieldLanguage, c.languageField(lang)), nil
}
