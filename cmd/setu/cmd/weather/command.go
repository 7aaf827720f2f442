// Package weather implements the weather command.
package weather

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dhartisetu/setu"
	"github.com/dhartisetu/setu/internal/appcontext"
	"github.com/dhartisetu/setu/internal/cmd/cmdutil"
)

// NewCommand creates the weather command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "weather",
		GroupID: "api",
		Short:   "Weather and environment predictions",
		Example: `  setu weather rainfall --set subdivision="Konkan & Goa" --set year=2025 --set month=7
  setu weather aqi --data @readings.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	predictions := []struct {
		use, short string
		call       func(*setu.WeatherAPI, context.Context, any) (setu.Response, error)
	}{
		{"flood", "Predict flood risk", (*setu.WeatherAPI).PredictFlood},
		{"storm", "Predict storm risk", (*setu.WeatherAPI).PredictStorm},
		{"rainfall", "Predict rainfall", (*setu.WeatherAPI).PredictRainfall},
		{"aqi", "Predict the air quality index", (*setu.WeatherAPI).PredictAQI},
		{"co2", "Predict CO2 emissions", (*setu.WeatherAPI).PredictCO2},
	}
	for _, p := range predictions {
		p := p
		cmd.AddCommand(cmdutil.NewActionCommand(app, p.use, p.short,
			func(ctx context.Context, c *setu.Client, body map[string]any) (setu.Response, error) {
				return p.call(c.Weather(), ctx, body)
			}))
	}

	return cmd
}
