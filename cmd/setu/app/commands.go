package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhartisetu/setu/cmd/setu/cmd/completion"
	"github.com/dhartisetu/setu/cmd/setu/cmd/crop"
	"github.com/dhartisetu/setu/cmd/setu/cmd/disease"
	"github.com/dhartisetu/setu/cmd/setu/cmd/location"
	"github.com/dhartisetu/setu/cmd/setu/cmd/lookups"
	"github.com/dhartisetu/setu/cmd/setu/cmd/market"
	"github.com/dhartisetu/setu/cmd/setu/cmd/routes"
	"github.com/dhartisetu/setu/cmd/setu/cmd/soil"
	"github.com/dhartisetu/setu/cmd/setu/cmd/water"
	"github.com/dhartisetu/setu/cmd/setu/cmd/weather"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// API commands, one per endpoint group
	rootCmd.AddCommand(location.NewCommand(a))
	rootCmd.AddCommand(disease.NewCommand(a))
	rootCmd.AddCommand(soil.NewCommand(a))
	rootCmd.AddCommand(crop.NewCommand(a))
	rootCmd.AddCommand(weather.NewCommand(a))
	rootCmd.AddCommand(market.NewCommand(a))
	rootCmd.AddCommand(water.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(lookups.NewCommand(a))
	rootCmd.AddCommand(routes.NewCommand(a))
	rootCmd.AddCommand(completion.NewCommand())
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		GroupID: "utility",
		Short:   "Show version information",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "setu %s\n", a.version)
			_, _ = fmt.Fprintf(w, "  commit:   %s\n", a.commit)
			_, _ = fmt.Fprintf(w, "  built:    %s\n", a.date)
			_, _ = fmt.Fprintf(w, "  built by: %s\n", a.builtBy)
		},
	}
}
