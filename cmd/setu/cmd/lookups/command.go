// Package lookups implements the lookups command.
package lookups

import (
	"context"
	"strconv"
	"sync"

	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"

	"github.com/dhartisetu/setu"
	"github.com/dhartisetu/setu/internal/appcontext"
	"github.com/dhartisetu/setu/internal/cmd/cmdutil"
	"github.com/dhartisetu/setu/internal/cmd/output"
	"github.com/dhartisetu/setu/pkg/response"
)

// NewCommand creates the lookups command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "lookups",
		GroupID: "utility",
		Short:   "Fetch every reference list at once",
		Long: `Lookups fetches states, subdivisions, crops and seasons concurrently.
A list the backend cannot serve shows up empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			merged := Fetch(cmd.Context(), client)
			if output.DetectFormat(app.OutputFormat()) == output.FormatTable {
				return cmdutil.Print(app, Summary(merged))
			}
			return cmdutil.Print(app, merged)
		},
	}
}

// Fetch calls every lookup endpoint concurrently and merges the results.
// Each lookup falls back on its own, so one failure empties only its list.
func Fetch(ctx context.Context, client *setu.Client) response.Response {
	lookups := []cmdutil.LookupFunc{
		cmdutil.States,
		cmdutil.Subdivisions,
		cmdutil.Crops,
		cmdutil.Seasons,
	}

	var (
		mu     sync.Mutex
		merged = response.Response{}
		wg     conc.WaitGroup
	)
	for _, lookup := range lookups {
		lookup := lookup
		wg.Go(func() {
			resp := lookup(ctx, client)
			mu.Lock()
			defer mu.Unlock()
			for k, v := range resp {
				merged[k] = v
			}
		})
	}
	wg.Wait()

	return merged
}

// Summary lays the merged lists out as one row per list.
func Summary(merged response.Response) output.Data {
	keys := []string{"states", "subdivisions", "crops", "seasons"}
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		list, _ := merged[k].([]any)
		sample := list
		if len(sample) > 5 {
			sample = sample[:5]
		}
		var preview string
		if len(sample) > 0 {
			preview = output.Cell(sample)
		}
		if len(list) > len(sample) {
			preview += " ..."
		}
		rows = append(rows, []string{output.HeaderTitle(k), strconv.Itoa(len(list)), preview})
	}
	return output.Data{
		Headers:         []string{"Lookup", "Count", "First Entries"},
		Rows:            rows,
		ColumnAlignment: []output.Align{output.AlignLeft, output.AlignRight, output.AlignLeft},
	}
}
