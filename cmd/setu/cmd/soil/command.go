// Package soil implements the soil command.
package soil

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dhartisetu/setu"
	"github.com/dhartisetu/setu/internal/appcontext"
	"github.com/dhartisetu/setu/internal/cmd/cmdutil"
)

// NewCommand creates the soil command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "soil",
		GroupID: "api",
		Short:   "Classify soil images and assess soil health",
		Example: `  setu soil detect field.jpg --language mr
  setu soil health --data '{"N": 90, "P": 42, "K": 43, "ph": 6.5}'
  setu soil health --data @soil-test.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(cmdutil.NewUploadCommand(app, "detect", "Upload a soil image for classification",
		func(ctx context.Context, c *setu.Client, f *setu.File, lang string) (setu.Response, error) {
			return c.Soil().DetectType(ctx, f, lang)
		}))
	cmd.AddCommand(cmdutil.NewActionCommand(app, "health", "Assess soil health from test readings",
		func(ctx context.Context, c *setu.Client, body map[string]any) (setu.Response, error) {
			return c.Soil().AssessHealth(ctx, body)
		}))

	return cmd
}
