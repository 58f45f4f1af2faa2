package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidIndex = errors.New("invalid bottle index")
	ErrBadLayout    = errors.New("invalid bottle layout")
)

// Board is one puzzle instance: ordered bottles plus a single undo checkpoint.
type Board struct {
	bottles []Bottle
	last    []Bottle
}

func NewBoard() *Board { return &Board{} }

// NewBoardFromColors builds a board with one bottle per entry, bottom to top.
func NewBoardFromColors(bottles [][]Color) (*Board, error) {
	b := NewBoard()
	for i, colors := range bottles {
		if err := b.InitBottle(colors...); err != nil {
			return nil, fmt.Errorf("bottle %d: %w", i+1, err)
		}
	}
	return b, nil
}

// NewBoardFromBottles reverses Bottles: Capacity codes per bottle, bottom to
// top, with Empty codes only above the last unit.
func NewBoardFromBottles(codes []byte) (*Board, error) {
	if len(codes)%Capacity != 0 {
		return nil, fmt.Errorf("%w: %d codes is not a multiple of %d", ErrBadLayout, len(codes), Capacity)
	}
	b := NewBoard()
	for i := 0; i < len(codes); i += Capacity {
		var colors []Color
		for j, code := range codes[i : i+Capacity] {
			c, err := ColorFromCode(code)
			if err != nil {
				return nil, fmt.Errorf("bottle %d: %w", i/Capacity+1, err)
			}
			if c == Empty {
				for _, rest := range codes[i+j+1 : i+Capacity] {
					if rest != Empty.Code() {
						return nil, fmt.Errorf("%w: bottle %d has a gap", ErrBadLayout, i/Capacity+1)
					}
				}
				break
			}
			colors = append(colors, c)
		}
		if err := b.InitBottle(colors...); err != nil {
			return nil, fmt.Errorf("bottle %d: %w", i/Capacity+1, err)
		}
	}
	return b, nil
}

// InitBottle appends a bottle holding colors, bottom to top.
func (b *Board) InitBottle(colors ...Color) error {
	bottle, err := NewBottle(len(b.bottles), colors...)
	if err != nil {
		return err
	}
	b.bottles = append(b.bottles, bottle)
	return nil
}

func (b *Board) InitEmptyBottle() {
	b.bottles = append(b.bottles, Bottle{index: len(b.bottles)})
}

func (b *Board) InitBottleWithOneColor(c Color) error { return b.InitBottle(c) }

func (b *Board) InitBottleWithTwoColors(c, c1 Color) error { return b.InitBottle(c, c1) }

func (b *Board) InitBottleWithThreeColors(c, c1, c2 Color) error { return b.InitBottle(c, c1, c2) }

func (b *Board) InitBottleWithFourColors(c, c1, c2, c3 Color) error {
	return b.InitBottle(c, c1, c2, c3)
}

func (b *Board) BottlesCount() int { return len(b.bottles) }

// Bottle returns a copy of the bottle at index i.
func (b *Board) Bottle(i int) (Bottle, error) {
	if err := b.checkIndex(i); err != nil {
		return Bottle{}, err
	}
	return b.bottles[i], nil
}

func (b *Board) checkIndex(i int) error {
	if i < 0 || i >= len(b.bottles) {
		return fmt.Errorf("%w: %d (have %d bottles)", ErrInvalidIndex, i, len(b.bottles))
	}
	return nil
}

// Pour moves the contiguous top run of from onto to, one unit at a time,
// until from is empty or to refuses. The state before the call becomes the
// undo checkpoint. It returns the number of units moved.
func (b *Board) Pour(from, to int) (int, error) {
	if err := b.checkIndex(from); err != nil {
		return 0, err
	}
	if err := b.checkIndex(to); err != nil {
		return 0, err
	}
	b.last = make([]Bottle, len(b.bottles))
	copy(b.last, b.bottles)
	if from == to {
		return 0, nil
	}
	src, dst := &b.bottles[from], &b.bottles[to]
	moved := 0
	for {
		c, ok := src.TopColor()
		if !ok || !dst.Pour(c) {
			break
		}
		src.Pop()
		moved++
	}
	return moved, nil
}

// Undo restores the checkpoint taken by the last Pour. It is single-shot.
func (b *Board) Undo() bool {
	if b.last == nil {
		return false
	}
	b.bottles = b.last
	b.last = nil
	return true
}

func (b *Board) UndoAvailable() bool { return b.last != nil }

// Reset drops every bottle; the caller reinitializes the board.
func (b *Board) Reset() {
	b.bottles = nil
	b.last = nil
}

// Win reports whether every bottle is empty or solved.
func (b *Board) Win() bool {
	for i := range b.bottles {
		if !b.bottles[i].IsEmpty() && !b.bottles[i].IsSolved() {
			return false
		}
	}
	return true
}

// ColorCounts returns the number of units of each colour on the board.
func (b *Board) ColorCounts() map[Color]int {
	counts := make(map[Color]int)
	for i := range b.bottles {
		for _, c := range b.bottles[i].slots[:b.bottles[i].n] {
			counts[c]++
		}
	}
	return counts
}

// CanBeSorted reports whether every colour present fills exactly one bottle.
func (b *Board) CanBeSorted() bool {
	for _, n := range b.ColorCounts() {
		if n != Capacity {
			return false
		}
	}
	return true
}

// Bottles serializes every slot, board order then bottom to top, as colour codes.
func (b *Board) Bottles() []byte {
	out := make([]byte, 0, len(b.bottles)*Capacity)
	for i := range b.bottles {
		for _, c := range b.bottles[i].slots {
			out = append(out, c.Code())
		}
	}
	return out
}

// Key identifies the configuration; equal boards have equal keys.
func (b *Board) Key() string { return string(b.Bottles()) }

// Clone copies the bottles. The undo checkpoint is not carried over.
func (b *Board) Clone() *Board {
	return &Board{bottles: append([]Bottle(nil), b.bottles...)}
}

// Equal compares bottles slot by slot.
func (b *Board) Equal(o *Board) bool {
	if len(b.bottles) != len(o.bottles) {
		return false
	}
	for i := range b.bottles {
		if b.bottles[i].slots != o.bottles[i].slots {
			return false
		}
	}
	return true
}

// Snapshot returns each bottle's colours, bottom to top.
func (b *Board) Snapshot() [][]Color {
	out := make([][]Color, len(b.bottles))
	for i := range b.bottles {
		out[i] = b.bottles[i].Colors()
	}
	return out
}

// String renders one line per bottle: 1-based index, then slots bottom to top.
func (b *Board) String() string {
	var sb strings.Builder
	for i := range b.bottles {
		fmt.Fprintf(&sb, "%2d:", i+1)
		for _, c := range b.bottles[i].slots {
			sb.WriteByte(' ')
			sb.WriteString(c.Tag())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
