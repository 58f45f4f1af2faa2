package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"svw.info/watersort/internal/adapters/tui"
	"svw.info/watersort/internal/domain"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		difficulty string
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "play [level]",
		Short: "Play a level in the terminal; without a level one is dealt at random",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lvl, err := a.deal(ctx, args, difficulty, seed)
			if err != nil {
				return err
			}
			m, err := tui.New(a.uc, lvl, a.cfg.Solver.Timeout)
			if err != nil {
				return err
			}
			a.logger.Debug("playing", "level", lvl.ID)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "difficulty of a dealt level")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed of a dealt level (0 picks one)")
	return cmd
}

// deal loads the named level, or generates one within the solver timeout.
func (a *app) deal(ctx context.Context, args []string, difficulty string, seed int64) (*domain.Level, error) {
	if len(args) == 1 {
		return a.uc.Level(ctx, args[0])
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Solver.Timeout)
	defer cancel()
	lvl, _, err := a.uc.Generate(ctx, seed, domain.ParseDifficulty(difficulty))
	return lvl, err
}
