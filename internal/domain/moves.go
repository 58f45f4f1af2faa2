package domain

import "fmt"

// Move is a candidate pour from one bottle index to another.
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (m Move) String() string { return fmt.Sprintf("%d->%d", m.From, m.To) }

// MoveSet holds moves already tried by the caller.
type MoveSet map[Move]struct{}

func (s MoveSet) Add(m Move) { s[m] = struct{}{} }

func (s MoveSet) Has(m Move) bool {
	_, ok := s[m]
	return ok
}

// MoveAvailable reports whether at least one useful pour exists.
func (b *Board) MoveAvailable() bool {
	hasEmpty, hasFilled := false, false
	for i := range b.bottles {
		if b.bottles[i].IsEmpty() {
			hasEmpty = true
		} else {
			hasFilled = true
		}
	}
	if hasEmpty {
		return hasFilled
	}
	for i := range b.bottles {
		ci, _ := b.bottles[i].TopColor()
		for j := i + 1; j < len(b.bottles); j++ {
			cj, _ := b.bottles[j].TopColor()
			if ci == cj && (!b.bottles[i].IsFull() || !b.bottles[j].IsFull()) {
				return true
			}
		}
	}
	return false
}

// NextAvailableMove returns the first candidate, in priority order, that is
// not in tried. Pours into empty bottles come first, then pours onto a
// matching top colour that fit the whole run.
func (b *Board) NextAvailableMove(tried MoveSet) (Move, bool) {
	var found Move
	ok := false
	b.eachCandidate(func(m Move) bool {
		if tried.Has(m) {
			return true
		}
		found, ok = m, true
		return false
	})
	return found, ok
}

// NextAvailableMoves lists every candidate in priority order.
func (b *Board) NextAvailableMoves() []Move {
	tried := make(MoveSet)
	var out []Move
	for {
		m, ok := b.NextAvailableMove(tried)
		if !ok {
			return out
		}
		tried.Add(m)
		out = append(out, m)
	}
}

// eachCandidate yields candidates in order until yield returns false.
func (b *Board) eachCandidate(yield func(Move) bool) {
	for e := range b.bottles {
		if !b.bottles[e].IsEmpty() {
			continue
		}
		for s := range b.bottles {
			if b.bottles[s].IsEmpty() || b.bottles[s].IsSolved() {
				continue
			}
			if !yield(Move{From: s, To: e}) {
				return
			}
		}
	}
	for s := range b.bottles {
		src := &b.bottles[s]
		cs, ok := src.TopColor()
		if !ok {
			continue
		}
		for d := range b.bottles {
			if d == s {
				continue
			}
			dst := &b.bottles[d]
			cd, ok := dst.TopColor()
			if !ok || cd != cs || dst.IsFull() {
				continue
			}
			if src.AmountToPour() > dst.AvailableEmptySpace() {
				continue
			}
			if !yield(Move{From: s, To: d}) {
				return
			}
		}
	}
}
