// Package crop implements the crop command.
package crop

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dhartisetu/setu"
	"github.com/dhartisetu/setu/internal/appcontext"
	"github.com/dhartisetu/setu/internal/cmd/cmdutil"
)

// NewCommand creates the crop command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "crop",
		GroupID: "api",
		Short:   "Recommend crops and list known crops",
		Example: `  setu crop recommend --set N=90 --set P=42 --set K=43 --set temperature=20.8 \
      --set humidity=82 --set ph=6.5 --set rainfall=202.9
  setu crop list`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(cmdutil.NewActionCommand(app, "recommend", "Recommend crops for soil and climate readings",
		func(ctx context.Context, c *setu.Client, body map[string]any) (setu.Response, error) {
			return c.Crop().Recommend(ctx, body)
		}))
	cmd.AddCommand(cmdutil.NewLookupCommand(app, "list", "List known crops", cmdutil.Crops))

	return cmd
}
