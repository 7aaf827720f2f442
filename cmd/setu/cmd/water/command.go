// Package water implements the water command.
package water

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dhartisetu/setu"
	"github.com/dhartisetu/setu/internal/appcontext"
	"github.com/dhartisetu/setu/internal/cmd/cmdutil"
)

// NewCommand creates the water command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "water",
		GroupID: "api",
		Short:   "Estimate irrigation water requirements",
		Example: `  setu water requirement --set crop=Wheat --set area=1.5 --set soil_type=Loamy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(cmdutil.NewActionCommand(app, "requirement", "Calculate the water requirement of a crop",
		func(ctx context.Context, c *setu.Client, body map[string]any) (setu.Response, error) {
			return c.Water().CalculateRequirement(ctx, body)
		}))

	return cmd
}
