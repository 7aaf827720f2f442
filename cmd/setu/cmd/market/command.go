// Package market implements the market command.
package market

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dhartisetu/setu"
	"github.com/dhartisetu/setu/internal/appcontext"
	"github.com/dhartisetu/setu/internal/cmd/cmdutil"
)

// NewCommand creates the market command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "market",
		GroupID: "api",
		Short:   "Yield, price and profit predictions",
		Example: `  setu market yield --set crop=Rice --set season=Kharif --set state=Punjab --set area=2
  setu market price --data @onion.yaml
  setu market seasons -o table`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(cmdutil.NewActionCommand(app, "yield", "Predict crop yield",
		func(ctx context.Context, c *setu.Client, body map[string]any) (setu.Response, error) {
			return c.Market().PredictYield(ctx, body)
		}))
	cmd.AddCommand(cmdutil.NewActionCommand(app, "price", "Predict the market price of a crop",
		func(ctx context.Context, c *setu.Client, body map[string]any) (setu.Response, error) {
			return c.Market().PredictPrice(ctx, body)
		}))
	cmd.AddCommand(cmdutil.NewActionCommand(app, "profit", "Estimate profit from costs, yield and price",
		func(ctx context.Context, c *setu.Client, body map[string]any) (setu.Response, error) {
			return c.Market().CalculateProfit(ctx, body)
		}))
	cmd.AddCommand(cmdutil.NewLookupCommand(app, "seasons", "List cropping seasons", cmdutil.Seasons))

	return cmd
}
