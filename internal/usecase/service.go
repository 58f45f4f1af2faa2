package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Levels    ports.LevelStore
	// Depth is the solver depth limit used when a caller passes 0.
	Depth int
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, l ports.LevelStore, depth int) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Levels: l, Depth: depth}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) depth(d int) int {
	if d > 0 {
		return d
	}
	return u.Depth
}

func (u *Service) Solve(ctx context.Context, b *domain.Board, depth int) ([]domain.Move, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b, u.depth(depth))
}

// SolveAndReplay solves a copy of b and pours the solution onto b itself.
// It returns the moves applied; none when no solution was found.
func (u *Service) SolveAndReplay(ctx context.Context, b *domain.Board, depth int) ([]domain.Move, ports.Stats, error) {
	moves, st, err := u.Solve(ctx, b.Clone(), depth)
	if err != nil {
		return nil, st, err
	}
	for i, m := range moves {
		if _, err := b.Pour(m.From, m.To); err != nil {
			return moves[:i], st, fmt.Errorf("replay move %d (%s): %w", i+1, m, err)
		}
	}
	return moves, st, nil
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Level, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.ColorConflict, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board, depth int) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b, u.depth(depth))
}

// Levels
func (u *Service) Level(ctx context.Context, id string) (*domain.Level, error) {
	if u.Levels == nil {
		return nil, errNotConfigured
	}
	return u.Levels.Load(ctx, id)
}

func (u *Service) ListLevels(ctx context.Context) ([]domain.LevelMeta, error) {
	if u.Levels == nil {
		return nil, errNotConfigured
	}
	return u.Levels.List(ctx)
}

// LevelDepth picks the level's own depth limit, falling back to the service default.
func (u *Service) LevelDepth(l *domain.Level) int {
	if l != nil && l.Depth > 0 {
		return l.Depth
	}
	return u.Depth
}
