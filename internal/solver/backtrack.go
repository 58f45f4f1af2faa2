package solver

import "svw.info/watersort/internal/domain"

// BacktrackingSolver is a depth-limited recursive solver. It explores moves
// in the board's priority order and returns the first solution it reaches,
// which is not necessarily the shortest.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// --- helpers used by Solve (in backtrack_solve.go) ---

// path is the set of configurations on the current branch.
type path map[string]struct{}

func (p path) visit(b *domain.Board) bool {
	k := b.Key()
	if _, seen := p[k]; seen {
		return false
	}
	p[k] = struct{}{}
	return true
}

func (p path) leave(b *domain.Board) { delete(p, b.Key()) }

// apply returns a copy of b with m poured.
func apply(b *domain.Board, m domain.Move) (*domain.Board, error) {
	next := b.Clone()
	if _, err := next.Pour(m.From, m.To); err != nil {
		return nil, err
	}
	return next, nil
}
