// Package routes implements the routes command.
package routes

import (
	"github.com/spf13/cobra"

	"github.com/dhartisetu/setu"
	"github.com/dhartisetu/setu/internal/appcontext"
	"github.com/dhartisetu/setu/internal/cmd/output"
)

// NewCommand creates the routes command. It needs no backend.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "routes",
		GroupID: "utility",
		Short:   "List the backend routes the client calls",
		Long: `Routes prints every endpoint with its method, path relative to the
/api/v1 base URL, and what it does on error: "throw" endpoints fail the
command, "fallback" endpoints print an empty default instead.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return output.FormatRoutes(app.Stdout(), app.OutputFormat(), setu.Routes())
		},
	}
}
