// Package tui is the interactive terminal player.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"svw.info/watersort/internal/domain"
	"svw.info/watersort/internal/metrics"
	"svw.info/watersort/internal/ports"
	"svw.info/watersort/internal/render"
	"svw.info/watersort/internal/usecase"
)

var titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

// Model plays one level. Solve and hint run as commands on a copy of the
// board; input is ignored until they report back.
type Model struct {
	uc      *usecase.Service
	level   *domain.Level
	board   *domain.Board
	timeout time.Duration

	cursor   int
	selected int
	status   string
	busy     bool
	quitting bool

	keys keyMap
	help help.Model
}

type solvedMsg struct {
	board *domain.Board
	moves []domain.Move
	stats ports.Stats
	err   error
}

type hintMsg struct {
	hint  domain.Hint
	found bool
	err   error
}

// New deals level. timeout bounds each solve or hint.
func New(uc *usecase.Service, level *domain.Level, timeout time.Duration) (Model, error) {
	b, err := level.Board()
	if err != nil {
		return Model{}, err
	}
	return Model{
		uc:       uc,
		level:    level,
		board:    b,
		timeout:  timeout,
		selected: -1,
		keys:     defaultKeys(),
		help:     help.New(),
	}, nil
}

// Board is the live board.
func (m Model) Board() *domain.Board { return m.board }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case solvedMsg:
		m.busy = false
		switch {
		case msg.err != nil:
			m.status = "Solver stopped: " + msg.err.Error()
		case len(msg.moves) == 0:
			m.status = fmt.Sprintf("No solution within %d moves", m.uc.LevelDepth(m.level))
		default:
			m.board = msg.board
			m.selected = -1
			m.status = fmt.Sprintf("Solved in %d moves (%d positions, %s)",
				len(msg.moves), msg.stats.Nodes, msg.stats.Duration.Round(time.Millisecond))
		}

	case hintMsg:
		m.busy = false
		switch {
		case msg.err != nil:
			m.status = "Hint failed: " + msg.err.Error()
		case !msg.found:
			m.status = "No hint available"
		default:
			m.cursor = msg.hint.Move.From
			m.status = msg.hint.Message
		}

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.board.BottlesCount()
	switch {
	case key.Matches(msg, m.keys.Left):
		if n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}
	case key.Matches(msg, m.keys.Right):
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case key.Matches(msg, m.keys.Pick):
		m.pick()
	case key.Matches(msg, m.keys.Undo):
		if m.board.Undo() {
			m.status = "Undone"
		} else {
			m.status = "Nothing to undo"
		}
		m.selected = -1
	case key.Matches(msg, m.keys.Reset):
		fresh, err := m.level.Board()
		if err != nil {
			m.status = err.Error()
			break
		}
		m.board.Reset()
		m.board = fresh
		m.selected = -1
		m.status = "Level reset"
	case key.Matches(msg, m.keys.Solve):
		m.busy = true
		m.status = "Solving..."
		return m, m.solveCmd()
	case key.Matches(msg, m.keys.Hint):
		m.busy = true
		m.status = "Thinking..."
		return m, m.hintCmd()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// pick selects the bottle under the cursor, or pours the selection into it.
func (m *Model) pick() {
	if m.selected < 0 {
		b, err := m.board.Bottle(m.cursor)
		if err != nil || b.IsEmpty() {
			m.status = "Pick a bottle with water"
			return
		}
		m.selected = m.cursor
		m.status = fmt.Sprintf("Bottle %d selected", m.cursor+1)
		return
	}
	from := m.selected
	m.selected = -1
	if from == m.cursor {
		m.status = ""
		return
	}
	moved, err := m.board.Pour(from, m.cursor)
	switch {
	case err != nil:
		metrics.ObservePour("invalid")
		m.status = err.Error()
	case moved == 0:
		metrics.ObservePour("noop")
		m.status = "Can't pour there"
	default:
		metrics.ObservePour("moved")
		m.status = fmt.Sprintf("Poured %d from %d into %d", moved, from+1, m.cursor+1)
	}
}

func (m Model) solveCmd() tea.Cmd {
	uc, b, depth, timeout := m.uc, m.board.Clone(), m.uc.LevelDepth(m.level), m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		moves, st, err := uc.SolveAndReplay(ctx, b, depth)
		return solvedMsg{board: b, moves: moves, stats: st, err: err}
	}
}

func (m Model) hintCmd() tea.Cmd {
	uc, b, depth, timeout := m.uc, m.board.Clone(), m.uc.LevelDepth(m.level), m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		h, found, err := uc.Hint(ctx, b, depth)
		return hintMsg{hint: h, found: found, err: err}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	title := m.level.Name
	if title == "" {
		title = m.level.ID
	}
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Water Sort · %s (%s)", title, m.level.Difficulty)))
	sb.WriteByte('\n')
	sb.WriteString(render.Styled(m.board, m.selected, m.cursor))
	sb.WriteByte('\n')
	switch {
	case m.board.Win():
		sb.WriteString(render.WinStyle.Render("You won!"))
	case !m.board.MoveAvailable():
		sb.WriteString(render.MutedStyle.Render("No moves left. Undo or reset."))
	default:
		sb.WriteString(render.MutedStyle.Render(m.status))
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteByte('\n')
	return sb.String()
}
