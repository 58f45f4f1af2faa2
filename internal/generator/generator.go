package generator

import (
	"errors"

	"svw.info/watersort/internal/ports"
)

// DefaultEmptyBottles is the number of spare bottles added to generated levels.
const DefaultEmptyBottles = 2

// DefaultMaxAttempts bounds how many layouts are tried per Generate call.
const DefaultMaxAttempts = 50

var ErrNoLevel = errors.New("no solvable layout found")

// RandomGenerator shuffles full bottles of colour into a level. When Solver
// is set, layouts are kept only if the solver wins them within the level's
// depth. Depth is a floor; larger difficulties get a larger budget.
type RandomGenerator struct {
	Solver       ports.Solver
	Depth        int
	EmptyBottles int
	MaxAttempts  int
}

// NewRandomGenerator wires a generator that verifies layouts with s.
// A nil s skips verification.
func NewRandomGenerator(s ports.Solver, depth int) *RandomGenerator {
	return &RandomGenerator{
		Solver:       s,
		Depth:        depth,
		EmptyBottles: DefaultEmptyBottles,
		MaxAttempts:  DefaultMaxAttempts,
	}
}
