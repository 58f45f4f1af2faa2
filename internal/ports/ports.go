package ports

import (
	"context"
	"time"

	"svw.info/watersort/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver searches for a pour sequence of at most depth moves that wins the board.
// An empty result with a nil error means no solution within depth.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board, depth int) ([]domain.Move, Stats, error)
}

// Generator creates new levels at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Level, Stats, error)
}

// Validator checks that every colour on the board fills exactly one bottle.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.ColorConflict, err error)
}

// Hinter suggests the next pour.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, depth int) (domain.Hint, bool, error)
}

// LevelStore retrieves level definitions.
type LevelStore interface {
	Load(ctx context.Context, id string) (*domain.Level, error)
	List(ctx context.Context) ([]domain.LevelMeta, error)
}
