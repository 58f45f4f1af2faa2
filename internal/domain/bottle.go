package domain

import (
	"errors"
	"fmt"
)

// Capacity is the number of units a bottle holds.
const Capacity = 4

var ErrTooManyColors = errors.New("bottle holds at most 4 units")

// Bottle is a fixed-capacity stack of colour units filled from the bottom.
// slots[:n] are occupied; slots[n:] are always Empty.
type Bottle struct {
	index int
	slots [Capacity]Color
	n     int
}

// NewBottle builds a bottle at board position index from bottom-to-top colours.
func NewBottle(index int, colors ...Color) (Bottle, error) {
	b := Bottle{index: index}
	if len(colors) > Capacity {
		return b, fmt.Errorf("%w: got %d", ErrTooManyColors, len(colors))
	}
	for _, c := range colors {
		if !c.valid() {
			return b, fmt.Errorf("%w: %d", ErrUnknownColor, uint8(c))
		}
		b.slots[b.n] = c
		b.n++
	}
	return b, nil
}

func (b *Bottle) Index() int { return b.index }

// TopColor returns the colour of the highest occupied slot.
func (b *Bottle) TopColor() (Color, bool) {
	if b.n == 0 {
		return Empty, false
	}
	return b.slots[b.n-1], true
}

// Pour places one unit of c on top. It reports false, leaving the bottle
// untouched, when the bottle is full or its top colour differs from c.
func (b *Bottle) Pour(c Color) bool {
	if !c.valid() || b.n == Capacity {
		return false
	}
	if b.n > 0 && b.slots[b.n-1] != c {
		return false
	}
	b.slots[b.n] = c
	b.n++
	return true
}

// Pop removes the top unit. Callers must check TopColor first.
func (b *Bottle) Pop() {
	if b.n == 0 {
		panic(fmt.Sprintf("domain: pop on empty bottle %d", b.index))
	}
	b.n--
	b.slots[b.n] = Empty
}

func (b *Bottle) IsEmpty() bool { return b.n == 0 }

func (b *Bottle) IsFull() bool { return b.n == Capacity }

// IsSolved reports a full bottle of a single colour.
func (b *Bottle) IsSolved() bool {
	return b.IsFull() && b.IsEmptyOrOneColor()
}

// IsEmptyOrOneColor reports whether every occupied slot shares one colour.
func (b *Bottle) IsEmptyOrOneColor() bool {
	for i := 1; i < b.n; i++ {
		if b.slots[i] != b.slots[0] {
			return false
		}
	}
	return true
}

// AmountToPour counts the contiguous run of the top colour.
func (b *Bottle) AmountToPour() int {
	if b.n == 0 {
		return 0
	}
	top := b.slots[b.n-1]
	amount := 0
	for i := b.n - 1; i >= 0 && b.slots[i] == top; i-- {
		amount++
	}
	return amount
}

func (b *Bottle) AvailableEmptySpace() int { return Capacity - b.n }

// Colors returns the occupied slots, bottom to top.
func (b *Bottle) Colors() []Color {
	out := make([]Color, b.n)
	copy(out, b.slots[:b.n])
	return out
}

// Slots returns all four slots, bottom to top, with Empty for free space.
func (b *Bottle) Slots() [Capacity]Color { return b.slots }
