package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/hint"
	"svw.info/watersort/internal/infrastructure/storage"
	"svw.info/watersort/internal/solver"
	"svw.info/watersort/internal/validator"
	"svw.info/watersort/levels"
)

func newService() *Service {
	s := solver.NewBacktrackingSolver()
	return NewService(s, nil, validator.New(), hint.NewSolverHinter(s), storage.NewFS(levels.Assets), 5)
}

func twoColors(t *testing.T) *domain.Board {
	t.Helper()
	b, err := domain.NewBoardFromColors([][]domain.Color{
		{domain.Red, domain.Red, domain.Blue, domain.Blue},
		{domain.Blue, domain.Blue, domain.Red, domain.Red},
		nil,
	})
	require.NoError(t, err)
	return b
}

func TestSolveAndReplayWinsLiveBoard(t *testing.T) {
	b := twoColors(t)
	moves, _, err := newService().SolveAndReplay(context.Background(), b, 0)
	require.NoError(t, err)
	assert.Len(t, moves, 3)
	assert.True(t, b.Win())
	assert.True(t, b.UndoAvailable())
}

func TestSolveAndReplayWithoutSolutionLeavesBoard(t *testing.T) {
	b := twoColors(t)
	before := b.Bottles()
	moves, _, err := newService().SolveAndReplay(context.Background(), b, 2)
	require.NoError(t, err)
	assert.Empty(t, moves)
	assert.Equal(t, before, b.Bottles())
}

func TestSolveUsesDefaultDepth(t *testing.T) {
	svc := newService()
	svc.Depth = 2
	moves, _, err := svc.Solve(context.Background(), twoColors(t), 0)
	require.NoError(t, err)
	assert.Empty(t, moves)

	moves, _, err = svc.Solve(context.Background(), twoColors(t), 3)
	require.NoError(t, err)
	assert.Len(t, moves, 3)
}

func TestLevels(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	metas, err := svc.ListLevels(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, metas)

	lvl, err := svc.Level(ctx, "starter")
	require.NoError(t, err)
	assert.Equal(t, 20, svc.LevelDepth(lvl))
	assert.Equal(t, 5, svc.LevelDepth(&domain.Level{}))

	_, err = svc.Level(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrLevelNotFound)
}

func TestUnconfiguredDependencies(t *testing.T) {
	svc := &Service{}
	ctx := context.Background()
	b := domain.NewBoard()

	_, _, err := svc.Solve(ctx, b, 1)
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = svc.SolveAndReplay(ctx, b, 1)
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = svc.Generate(ctx, 1, domain.Easy)
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = svc.Validate(ctx, b)
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = svc.Hint(ctx, b, 1)
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = svc.Level(ctx, "x")
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = svc.ListLevels(ctx)
	assert.ErrorIs(t, err, errNotConfigured)
}
