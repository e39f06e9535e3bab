package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/go-drift/loom/pkg/app"
	"github.com/go-drift/loom/pkg/arena"
	loomtest "github.com/go-drift/loom/pkg/testing"
	"github.com/go-drift/loom/pkg/widgets"
	"github.com/go-drift/loom/showcase"
)

func addStats(topLevel *cobra.Command, o *rootOptions) {
	clicks := 10
	cmd := &cobra.Command{
		Use:   "stats <app>",
		Short: "Click through an application headlessly and report engine counters",
		Example: `
loom stats counter
loom stats todo --clicks 100
`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: demoNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clicks < 0 {
				return fmt.Errorf("--clicks must not be negative (got %d)", clicks)
			}
			demo, err := showcase.Lookup(args[0])
			if err != nil {
				return err
			}

			tester, err := loomtest.NewBridgeTester(demo.New(),
				app.WithLogger(o.logger),
				app.WithArena(arena.New(arena.WithChunkSize(o.cfg.ChunkSize))),
			)
			if err != nil {
				return err
			}
			for i := 0; i < clicks; i++ {
				if err := tester.Tap(loomtest.ByType[*widgets.ButtonWidget]()); err != nil {
					return fmt.Errorf("click %d: %w", i+1, err)
				}
			}

			o.logger.Debug("stats collected", "app", demo.Name, "clicks", clicks)
			return printStats(cmd.OutOrStdout(), demo.Name, clicks, tester)
		},
	}

	cmd.Flags().IntVarP(&clicks, "clicks", "n", clicks, "Number of clicks on the first button")

	topLevel.AddCommand(cmd)
}

func printStats(w io.Writer, name string, clicks int, tester *loomtest.WidgetTester) error {
	bold := color.New(color.Bold)
	runner := tester.Runner()
	hs := runner.Host().Stats()
	as := runner.Arena().Stats()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Counter"), bold.Sprint(name))
	tbl.AddRow("clicks", clicks)
	tbl.AddRow("cycles", runner.Cycles())
	tbl.AddRow("builds", hs.Reconcile.Builds)
	tbl.AddRow("updates", hs.Reconcile.Updates)
	tbl.AddRow("rebuilds", hs.Reconcile.Rebuilds)
	tbl.AddRow("layouts", hs.Layouts)
	tbl.AddRow("paints", hs.Paints)
	tbl.AddRow("events", hs.Events)
	tbl.AddRow("arena scopes", as.Scopes)
	tbl.AddRow("arena peak allocs", as.PeakAllocs)
	tbl.AddRow("arena chunks", as.Chunks)
	tbl.AddRow("arena types", as.Types)
	tbl.RightAlign(1)

	_, err := fmt.Fprintln(w, tbl)
	return err
}
