package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/ports"
	"svw.info/watersort/internal/solver"
)

// stubSolver reports a fixed answer and records calls.
type stubSolver struct {
	moves  []domain.Move
	calls  int
	depths []int
}

func (s *stubSolver) Solve(ctx context.Context, b *domain.Board, depth int) ([]domain.Move, ports.Stats, error) {
	s.calls++
	s.depths = append(s.depths, depth)
	return s.moves, ports.Stats{Nodes: 1}, nil
}

func TestGenerateAllDifficulties(t *testing.T) {
	g := NewRandomGenerator(nil, 20)

	cases := []struct {
		name   string
		diff   domain.Difficulty
		colors int
	}{
		{"easy", domain.Easy, 3},
		{"medium", domain.Medium, 5},
		{"hard", domain.Hard, 7},
		{"expert", domain.Expert, 9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			lvl, _, err := g.Generate(ctx, 12345, tc.diff)
			require.NoError(t, err)
			assert.Equal(t, tc.diff, lvl.Difficulty)
			assert.Len(t, lvl.Bottles, tc.colors+DefaultEmptyBottles)

			b, err := lvl.Board()
			require.NoError(t, err)
			assert.True(t, b.CanBeSorted())
			assert.Len(t, b.ColorCounts(), tc.colors)
			for i := 0; i < tc.colors; i++ {
				bottle, err := b.Bottle(i)
				require.NoError(t, err)
				assert.True(t, bottle.IsFull())
				assert.False(t, bottle.IsSolved())
			}
			for i := tc.colors; i < b.BottlesCount(); i++ {
				bottle, err := b.Bottle(i)
				require.NoError(t, err)
				assert.True(t, bottle.IsEmpty())
			}
		})
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	g := NewRandomGenerator(nil, 20)
	a, _, err := g.Generate(context.Background(), 99, domain.Medium)
	require.NoError(t, err)
	b, _, err := g.Generate(context.Background(), 99, domain.Medium)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "gen-medium-99", a.ID)
}

func TestGenerateVerifiesWithSolver(t *testing.T) {
	s := &stubSolver{moves: []domain.Move{{From: 0, To: 1}}}
	g := NewRandomGenerator(s, 7)
	lvl, st, err := g.Generate(context.Background(), 1, domain.Easy)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.calls, 1)
	assert.Equal(t, s.calls, st.Nodes)
	assert.Equal(t, 20, lvl.Depth)
	for _, d := range s.depths {
		assert.Equal(t, lvl.Depth, d)
	}
}

func TestGeneratedDepthGrowsWithDifficulty(t *testing.T) {
	g := NewRandomGenerator(nil, 20)
	want := map[domain.Difficulty]int{
		domain.Easy:   20,
		domain.Medium: 30,
		domain.Hard:   40,
		domain.Expert: 54,
	}
	for d, depth := range want {
		lvl, _, err := g.Generate(context.Background(), 3, d)
		require.NoError(t, err)
		assert.Equal(t, depth, lvl.Depth, d.String())
	}

	g.Depth = 60
	lvl, _, err := g.Generate(context.Background(), 3, domain.Hard)
	require.NoError(t, err)
	assert.Equal(t, 60, lvl.Depth, "configured depth is a floor")
}

func TestHardLevelSolvesWithinAdvertisedDepth(t *testing.T) {
	lvl, _, err := NewRandomGenerator(nil, 20).Generate(context.Background(), 42, domain.Hard)
	require.NoError(t, err)
	b, err := lvl.Board()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	moves, _, err := solver.NewBacktrackingSolver().Solve(ctx, b, lvl.Depth)
	require.NoError(t, err)
	require.NotEmpty(t, moves)
	assert.LessOrEqual(t, len(moves), lvl.Depth)
	for _, m := range moves {
		_, err := b.Pour(m.From, m.To)
		require.NoError(t, err)
	}
	assert.True(t, b.Win())
}

func TestGenerateGivesUpWhenNothingSolves(t *testing.T) {
	s := &stubSolver{}
	g := NewRandomGenerator(s, 7)
	g.MaxAttempts = 5
	_, _, err := g.Generate(context.Background(), 1, domain.Easy)
	assert.ErrorIs(t, err, ErrNoLevel)
	assert.LessOrEqual(t, s.calls, 5)
}

func TestGenerateStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewRandomGenerator(nil, 7).Generate(ctx, 1, domain.Easy)
	assert.ErrorIs(t, err, ErrNoLevel)
}
