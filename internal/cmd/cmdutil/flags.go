// Package cmdutil provides shared flags and run helpers for setu commands.
package cmdutil

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dhartisetu/setu"
	"github.com/dhartisetu/setu/internal/appcontext"
	"github.com/dhartisetu/setu/internal/cmd/output"
	"github.com/dhartisetu/setu/internal/payload"
)

// DataFlags holds the request body flags of action commands.
type DataFlags struct {
	Data string
	Set  []string
}

// AddDataFlags adds --data and --set to a command.
func AddDataFlags(cmd *cobra.Command) *DataFlags {
	flags := &DataFlags{}

	cmd.Flags().StringVarP(&flags.Data, "data", "d", "",
		"Request body as JSON or YAML, @file, or - for stdin")
	cmd.Flags().StringArrayVar(&flags.Set, "set", nil,
		"Set a body field (key=value, repeatable; dotted keys nest)")

	return flags
}

// Body builds the request body from the flags. --set values are applied
// on top of --data.
func (f *DataFlags) Body(app appcontext.Interface) (map[string]any, error) {
	body, err := payload.Parse(f.Data, app.Stdin())
	if err != nil {
		return nil, err
	}
	if err := payload.Apply(body, f.Set); err != nil {
		return nil, err
	}
	return body, nil
}

// LanguageFlag adds --language to an upload command.
func LanguageFlag(cmd *cobra.Command) *string {
	return cmd.Flags().StringP("language", "l", "en", "Language of the result (BCP 47 tag)")
}

// ActionFunc calls one action endpoint.
type ActionFunc func(ctx context.Context, client *setu.Client, body map[string]any) (setu.Response, error)

// LookupFunc calls one lookup endpoint.
type LookupFunc func(ctx context.Context, client *setu.Client) setu.Response

// NewActionCommand builds a command that sends the --data body to call
// and prints the result.
func NewActionCommand(app appcontext.Interface, use, short string, call ActionFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
	}
	flags := AddDataFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		body, err := flags.Body(app)
		if err != nil {
			return err
		}
		client, err := app.Client()
		if err != nil {
			return err
		}
		resp, err := call(cmd.Context(), client, body)
		if err != nil {
			return err
		}
		return Print(app, resp)
	}
	return cmd
}

// NewLookupCommand builds a command that prints one lookup list.
func NewLookupCommand(app appcontext.Interface, use, short string, call LookupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			return Print(app, call(cmd.Context(), client))
		},
	}
}

// Print writes data to the app's stdout in its output format.
func Print(app appcontext.Interface, data any) error {
	return output.FormatAny(app.Stdout(), app.OutputFormat(), data)
}

// Lookup endpoints as LookupFuncs, shared by the group commands and lookups.
var (
	States       LookupFunc = func(ctx context.Context, c *setu.Client) setu.Response { return c.Location().GetStates(ctx) }
	Subdivisions LookupFunc = func(ctx context.Context, c *setu.Client) setu.Response { return c.Location().GetSubdivisions(ctx) }
	Crops        LookupFunc = func(ctx context.Context, c *setu.Client) setu.Response { return c.Crop().GetCropList(ctx) }
	Seasons      LookupFunc = func(ctx context.Context, c *setu.Client) setu.Response { return c.Market().GetSeasons(ctx) }
)

// UploadFunc calls one image upload endpoint.
type UploadFunc func(ctx context.Context, client *setu.Client, file *setu.File, lang string) (setu.Response, error)

// NewUploadCommand builds a command that uploads the image named by its
// single argument.
func NewUploadCommand(app appcontext.Interface, use, short string, call UploadFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <image>",
		Short: short,
		Args:  cobra.ExactArgs(1),
	}
	lang := LanguageFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		client, err := app.Client()
		if err != nil {
			return err
		}
		file, err := setu.OpenFile(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		resp, err := call(cmd.Context(), client, file, *lang)
		if err != nil {
			return err
		}
		return Print(app, resp)
	}
	return cmd
}
