package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLevelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the level catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ls, err := a.uc.ListLevels(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDIFFICULTY\tBOTTLES\tNAME")
			for _, l := range ls {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", l.ID, l.Difficulty, l.Bottles, l.Name)
			}
			return tw.Flush()
		},
	}
}
