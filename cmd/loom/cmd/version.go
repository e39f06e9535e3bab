package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addVersion(topLevel *cobra.Command) {
	short := false
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the loom version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "loom version %s (built %s)\n", Version, BuildTime)
			return err
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print just the version number.")

	topLevel.AddCommand(cmd)
}
