package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/ports"
)

func targetColors(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 3
	case domain.Medium:
		return 5
	case domain.Hard:
		return 7
	default:
		return 9 // Expert
	}
}

// targetDepth is the pour budget a layout of the difficulty's size needs.
func targetDepth(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 20
	case domain.Medium:
		return 30
	case domain.Hard:
		return 40
	default:
		return 54
	}
}

// depthFor is the depth advertised on, and verified for, a level of d.
func (g *RandomGenerator) depthFor(d domain.Difficulty) int {
	return max(g.Depth, targetDepth(d))
}

// Generate creates a level from seed. Equal seeds and settings give equal levels.
func (g *RandomGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Level, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	n := targetColors(diff)
	colors := domain.Palette[:n]
	depth := g.depthFor(diff)

	attempts := g.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	nodes := 0
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, fmt.Errorf("%w: %v", ErrNoLevel, err)
		}
		bottles := shuffled(rng, colors)
		if anySolved(bottles) {
			continue
		}
		for i := 0; i < g.EmptyBottles; i++ {
			bottles = append(bottles, nil)
		}
		lvl := &domain.Level{
			ID:         fmt.Sprintf("gen-%s-%d", diff, seed),
			Name:       fmt.Sprintf("Generated %s #%d", diff, seed),
			Difficulty: diff,
			Depth:      depth,
			Bottles:    bottles,
		}
		if g.Solver == nil {
			return lvl, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
		b, err := lvl.Board()
		if err != nil {
			return nil, ports.Stats{}, err
		}
		moves, st, err := g.Solver.Solve(ctx, b, depth)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, fmt.Errorf("%w: %v", ErrNoLevel, err)
		}
		if len(moves) > 0 {
			return lvl, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrNoLevel
}

// shuffled deals four units of each colour into len(colors) full bottles.
func shuffled(rng *rand.Rand, colors []domain.Color) [][]domain.Color {
	units := make([]domain.Color, 0, len(colors)*domain.Capacity)
	for _, c := range colors {
		for i := 0; i < domain.Capacity; i++ {
			units = append(units, c)
		}
	}
	rng.Shuffle(len(units), func(i, j int) { units[i], units[j] = units[j], units[i] })
	out := make([][]domain.Color, len(colors))
	for i := range out {
		lo, hi := i*domain.Capacity, (i+1)*domain.Capacity
		out[i] = units[lo:hi:hi]
	}
	return out
}

func anySolved(bottles [][]domain.Color) bool {
	for _, b := range bottles {
		solved := true
		for _, c := range b[1:] {
			if c != b[0] {
				solved = false
				break
			}
		}
		if solved {
			return true
		}
	}
	return false
}
