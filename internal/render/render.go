// Package render draws boards for terminals.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"svw.info/watersort/internal/domain"
)

const cellWidth = 4

var (
	glassStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A9BA8"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Width(cellWidth + 2).Align(lipgloss.Center)
	WinStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F08000"))
	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
)

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Plain is the one-line-per-bottle text rendering.
func Plain(b *domain.Board) string { return b.String() }

// Styled draws bottles side by side, top slot first, with coloured units.
// The bottle at index selected is highlighted and cursor is marked under its label;
// pass -1 for either to disable.
func Styled(b *domain.Board, selected, cursor int) string {
	n := b.BottlesCount()
	bottles := make([]domain.Bottle, n)
	for i := range bottles {
		bottles[i], _ = b.Bottle(i)
	}
	var sb strings.Builder
	for level := domain.Capacity - 1; level >= 0; level-- {
		for i := range bottles {
			wall := glassStyle
			if i == selected {
				wall = selectedStyle
			}
			c := bottles[i].Slots()[level]
			cell := strings.Repeat(" ", cellWidth)
			if c != domain.Empty {
				cell = lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(cell)
			}
			sb.WriteString(wall.Render("│") + cell + wall.Render("│"))
		}
		sb.WriteByte('\n')
	}
	for i := range bottles {
		wall := glassStyle
		if i == selected {
			wall = selectedStyle
		}
		sb.WriteString(wall.Render("└" + strings.Repeat("─", cellWidth) + "┘"))
	}
	sb.WriteByte('\n')
	for i := range bottles {
		label := fmt.Sprint(i + 1)
		if i == cursor {
			label = "^" + label
		}
		sb.WriteString(labelStyle.Render(label))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Write renders b to w, styled when styled is true.
func Write(w io.Writer, b *domain.Board, styled bool) error {
	out := Plain(b)
	if styled {
		out = Styled(b, -1, -1)
	}
	_, err := io.WriteString(w, out)
	return err
}
