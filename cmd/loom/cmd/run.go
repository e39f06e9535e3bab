package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/go-drift/loom/pkg/app"
	"github.com/go-drift/loom/pkg/arena"
	"github.com/go-drift/loom/pkg/host"
	"github.com/go-drift/loom/pkg/shell"
	"github.com/go-drift/loom/pkg/terminal"
	"github.com/go-drift/loom/showcase"
)

func addRun(topLevel *cobra.Command, o *rootOptions) {
	cmd := &cobra.Command{
		Use:   "run <app>",
		Short: "Run a showcase application in the terminal",
		Long: `Run a showcase application in the terminal.

Click with the mouse, or press enter or space on a focused button.
Press q or ctrl+c to quit.`,
		Example: `
loom run counter
loom run todo --log-level debug
`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: demoNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			demo, err := showcase.Lookup(args[0])
			if err != nil {
				return err
			}

			runner := app.NewRunner(demo.New(),
				app.WithLogger(o.logger),
				app.WithArena(arena.New(arena.WithChunkSize(o.cfg.ChunkSize))),
				app.WithHostOptions(host.WithMeasurer(terminal.Measurer{})),
			)
			handler := shell.NewHandler(runner, shell.WithLogger(o.logger))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			o.logger.Info("starting", "app", demo.Name, "root", o.cfg.Root)
			return terminal.Run(ctx, handler, terminal.Options{
				Mouse:     o.cfg.Mouse,
				AltScreen: o.cfg.AltScreen,
				Title:     o.cfg.AppName + " - " + demo.Name,
				Logger:    o.logger,
			})
		},
	}

	topLevel.AddCommand(cmd)
}

func demoNames() []string {
	demos := showcase.Demos()
	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.Name
	}
	return names
}
