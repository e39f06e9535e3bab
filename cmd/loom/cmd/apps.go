package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/go-drift/loom/showcase"
)

func addApps(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "apps",
		Short: "List the showcase applications",
		Example: `
loom apps
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bold := color.New(color.Bold)

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("App"), bold.Sprint("Description"))
			for _, d := range showcase.Demos() {
				tbl.AddRow(d.Name, d.Description)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return err
		},
	}

	topLevel.AddCommand(cmd)
}
