package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/solver"
)

func TestHintReturnsFirstSolutionMove(t *testing.T) {
	b, err := domain.NewBoardFromColors([][]domain.Color{
		{domain.Red, domain.Red, domain.Blue, domain.Blue},
		{domain.Blue, domain.Blue, domain.Red, domain.Red},
		nil,
	})
	require.NoError(t, err)

	h := NewSolverHinter(solver.NewBacktrackingSolver())
	got, ok, err := h.Hint(context.Background(), b, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Move{From: 0, To: 2}, got.Move)
	assert.Equal(t, 3, got.Remaining)
	assert.Equal(t, "Pour bottle 1 into bottle 3 (3 moves to go)", got.Message)
}

func TestHintNotFound(t *testing.T) {
	h := NewSolverHinter(solver.NewBacktrackingSolver())

	won, err := domain.NewBoardFromColors([][]domain.Color{{domain.Teal, domain.Teal, domain.Teal, domain.Teal}})
	require.NoError(t, err)
	_, ok, err := h.Hint(context.Background(), won, 5)
	require.NoError(t, err)
	assert.False(t, ok)

	stuck, err := domain.NewBoardFromColors([][]domain.Color{
		{domain.Red, domain.Blue, domain.Red, domain.Blue},
		{domain.Blue, domain.Red, domain.Blue, domain.Red},
	})
	require.NoError(t, err)
	_, ok, err = h.Hint(context.Background(), stuck, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}
