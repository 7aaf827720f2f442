// Package disease implements the plant disease command.
package disease

import (
	"context"
	"encoding/base64"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhartisetu/setu"
	"github.com/dhartisetu/setu/internal/appcontext"
	"github.com/dhartisetu/setu/internal/cmd/cmdutil"
	"github.com/dhartisetu/setu/pkg/errors"
)

// NewCommand creates the disease command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "disease",
		Aliases: []string{"plant-disease"},
		GroupID: "api",
		Short:   "Detect plant diseases from leaf images",
		Example: `  setu disease detect leaf.jpg
  setu disease detect leaf.jpg --language hi
  setu disease detect-base64 leaf.png
  cat leaf.b64 | setu disease detect-base64 --raw -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(cmdutil.NewUploadCommand(app, "detect", "Upload a leaf image for diagnosis",
		func(ctx context.Context, c *setu.Client, f *setu.File, lang string) (setu.Response, error) {
			return c.PlantDisease().Detect(ctx, f, lang)
		}))
	cmd.AddCommand(newDetectBase64Command(app))

	return cmd
}

func newDetectBase64Command(app appcontext.Interface) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "detect-base64 <image|->",
		Short: "Send a leaf image as base64 JSON",
		Long: `Detect-base64 reads an image file, encodes it as a base64 data URL and
sends it as JSON. With --raw the argument (or stdin, for -) already holds
the encoded image and is sent unchanged.`,
		Args: cobra.ExactArgs(1),
	}
	lang := cmdutil.LanguageFlag(cmd)
	cmd.Flags().BoolVar(&raw, "raw", false, "Argument is already base64 encoded")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		imageData, err := readImageData(app, args[0], raw)
		if err != nil {
			return err
		}
		client, err := app.Client()
		if err != nil {
			return err
		}
		resp, err := client.PlantDisease().DetectBase64(cmd.Context(), imageData, *lang)
		if err != nil {
			return err
		}
		return cmdutil.Print(app, resp)
	}
	return cmd
}

// readImageData returns the image as a base64 data URL.
func readImageData(app appcontext.Interface, arg string, raw bool) (string, error) {
	if raw {
		if arg != "-" {
			return strings.TrimSpace(arg), nil
		}
		data, err := io.ReadAll(app.Stdin())
		if err != nil {
			return "", errors.WrapIO("read", "stdin", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", errors.WrapIO("read", arg, err)
	}
	return DataURL(filepath.Ext(arg), data), nil
}

// DataURL encodes data as a base64 data URL. The media type comes from
// the file extension, or from the content when the extension is unknown.
func DataURL(ext string, data []byte) string {
	mediaType := mime.TypeByExtension(strings.ToLower(ext))
	if mediaType == "" {
		mediaType = http.DetectContentType(data)
	}
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
