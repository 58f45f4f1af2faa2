package hint

import (
	"context"
	"fmt"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/ports"
)

// SolverHinter suggests the first pour of a solution found by a Solver.
type SolverHinter struct {
	Solver ports.Solver
}

func NewSolverHinter(s ports.Solver) *SolverHinter { return &SolverHinter{Solver: s} }

// Hint returns the next pour, or false when the board is won or no solution
// exists within depth.
func (h *SolverHinter) Hint(ctx context.Context, b *domain.Board, depth int) (domain.Hint, bool, error) {
	if b.Win() {
		return domain.Hint{}, false, nil
	}
	moves, _, err := h.Solver.Solve(ctx, b, depth)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if len(moves) == 0 {
		return domain.Hint{}, false, nil
	}
	m := moves[0]
	msg := fmt.Sprintf("Pour bottle %d into bottle %d (%d moves to go)", m.From+1, m.To+1, len(moves))
	return domain.Hint{Message: msg, Move: m, Remaining: len(moves)}, true, nil
}
