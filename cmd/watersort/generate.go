package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/infrastructure/storage"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		difficulty string
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Deal a random level and print it as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Solver.Timeout)
			defer cancel()
			lvl, st, err := a.uc.Generate(ctx, seed, domain.ParseDifficulty(difficulty))
			if err != nil {
				return err
			}
			a.logger.Debug("generated", "id", lvl.ID, "nodes", st.Nodes, "dur", st.Duration)
			data, err := storage.MarshalLevel(lvl)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "easy|medium|hard|expert")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	return cmd
}
