package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/watersort/internal/render"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		depth  int
		replay bool
	)
	cmd := &cobra.Command{
		Use:   "solve <level>",
		Short: "Search for a pour sequence that sorts a level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Solver.Timeout)
			defer cancel()

			lvl, err := a.uc.Level(ctx, args[0])
			if err != nil {
				return err
			}
			b, err := lvl.Board()
			if err != nil {
				return err
			}
			if depth <= 0 {
				depth = a.uc.LevelDepth(lvl)
			}
			out := cmd.OutOrStdout()
			color := styled(out)
			if err := render.Write(out, b, color); err != nil {
				return err
			}

			solve := a.uc.Solve
			if replay {
				solve = a.uc.SolveAndReplay
			}
			moves, st, err := solve(ctx, b, depth)
			if err != nil {
				return fmt.Errorf("solve %s: %w", lvl.ID, err)
			}
			a.logger.Debug("solve finished", "level", lvl.ID, "depth", depth, "nodes", st.Nodes, "dur", st.Duration)
			if len(moves) == 0 {
				fmt.Fprintf(out, "no solution within %d moves\n", depth)
				return nil
			}
			fmt.Fprintf(out, "solution in %d moves (%d positions searched):\n", len(moves), st.Nodes)
			for i, m := range moves {
				fmt.Fprintf(out, "%3d. pour %d into %d\n", i+1, m.From+1, m.To+1)
			}
			if replay {
				fmt.Fprintln(out)
				return render.Write(out, b, color)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "maximum moves to search (0 uses the level's setting)")
	cmd.Flags().BoolVar(&replay, "replay", false, "apply the solution and print the final board")
	return cmd
}
