// Package location implements the location command.
package location

import (
	"github.com/spf13/cobra"

	"github.com/dhartisetu/setu/internal/appcontext"
	"github.com/dhartisetu/setu/internal/cmd/cmdutil"
)

// NewCommand creates the location command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "location",
		GroupID: "api",
		Short:   "Resolve coordinates and list regions",
		Long: `Location resolves coordinates to a place and lists the states and
meteorological subdivisions the backend knows about.

These lookups never fail: when the backend is unreachable they print an
"Unknown" place or an empty list.`,
		Example: `  setu location reverse --lat 18.52 --lon 73.85
  setu location states -o table
  setu location subdivisions`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newReverseCommand(app))
	cmd.AddCommand(cmdutil.NewLookupCommand(app, "states", "List supported states", cmdutil.States))
	cmd.AddCommand(cmdutil.NewLookupCommand(app, "subdivisions", "List meteorological subdivisions", cmdutil.Subdivisions))

	return cmd
}

func newReverseCommand(app appcontext.Interface) *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "reverse",
		Short: "Resolve a coordinate to city, district and state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			return cmdutil.Print(app, client.Location().ReverseGeocode(cmd.Context(), lat, lon))
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in decimal degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude in decimal degrees")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}
