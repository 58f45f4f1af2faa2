package solver

import (
	"context"
	"time"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/metrics"
	"svw.info/watersort/internal/ports"
)

// Solve searches for at most depth pours that win b. b is not modified.
// No solution is reported as an empty slice and a nil error; the only
// error is context cancellation.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board, depth int) ([]domain.Move, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	if depth < 0 {
		depth = 0
	}
	if !b.CanBeSorted() {
		metrics.ObserveSolve("unsolved", nodes, time.Since(start))
		return []domain.Move{}, ports.Stats{Duration: time.Since(start)}, nil
	}

	visited := path{}
	moves := make([]domain.Move, 0, depth)
	var dfs func(cur *domain.Board, remaining int) (bool, error)
	dfs = func(cur *domain.Board, remaining int) (bool, error) {
		nodes++
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if cur.Win() {
			return true, nil
		}
		if remaining <= 0 {
			return false, nil
		}
		for _, m := range cur.NextAvailableMoves() {
			next, err := apply(cur, m)
			if err != nil {
				return false, err
			}
			if !visited.visit(next) {
				continue
			}
			moves = append(moves, m)
			ok, err := dfs(next, remaining-1)
			if ok || err != nil {
				return ok, err
			}
			moves = moves[:len(moves)-1]
			visited.leave(next)
		}
		return false, nil
	}

	root := b.Clone()
	visited.visit(root)
	ok, err := dfs(root, depth)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	switch {
	case err != nil:
		metrics.ObserveSolve("canceled", nodes, st.Duration)
		return []domain.Move{}, st, err
	case !ok:
		metrics.ObserveSolve("unsolved", nodes, st.Duration)
		return []domain.Move{}, st, nil
	}
	metrics.ObserveSolve("solved", nodes, st.Duration)
	return moves, st, nil
}
