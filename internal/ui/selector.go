package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/nibzard/kantask/internal/board"
	"github.com/nibzard/kantask/internal/discovery"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7B801"))
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true)
	filterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	noMatchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	selectedStyle = lipgloss.NewStyle().Bold(true)
)

// BoardSelector lets the user pick a board in the terminal.
type BoardSelector struct {
	in  io.Reader
	out io.Writer
}

// SelectorOption configures a BoardSelector.
type SelectorOption func(*BoardSelector)

// WithInput sets the reader keystrokes are read from.
func WithInput(r io.Reader) SelectorOption {
	return func(s *BoardSelector) { s.in = r }
}

// WithOutput sets the writer the selector renders to.
func WithOutput(w io.Writer) SelectorOption {
	return func(s *BoardSelector) { s.out = w }
}

// NewBoardSelector creates a selector that renders to stderr by default so
// stdout stays free for command output.
func NewBoardSelector(opts ...SelectorOption) *BoardSelector {
	s := &BoardSelector{in: os.Stdin, out: os.Stderr}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ discovery.Selector = (*BoardSelector)(nil)

// SelectBoard implements discovery.Selector.
func (s *BoardSelector) SelectBoard(ctx context.Context, boards []*board.Board) (*board.Board, error) {
	model := newSelectModel(boards)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
	)
	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("board selector: %w", err)
	}
	m, ok := final.(*selectModel)
	if !ok || m.chosen == nil {
		return nil, discovery.ErrSelectionCancelled
	}
	return m.chosen, nil
}

type selectModel struct {
	boards  []*board.Board
	visible []*board.Board
	filter  string
	cursor  int
	chosen  *board.Board
}

func newSelectModel(boards []*board.Board) *selectModel {
	m := &selectModel{boards: boards}
	m.applyFilter()
	return m
}

func (m *selectModel) Init() tea.Cmd {
	return nil
}

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.chosen = nil
		return m, tea.Quit
	case tea.KeyEnter:
		if len(m.visible) == 0 {
			return m, nil
		}
		m.chosen = m.visible[m.cursor]
		return m, tea.Quit
	case tea.KeyUp, tea.KeyShiftTab, tea.KeyCtrlP:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown, tea.KeyTab, tea.KeyCtrlN:
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case tea.KeyBackspace:
		if m.filter != "" {
			r := []rune(m.filter)
			m.filter = string(r[:len(r)-1])
			m.applyFilter()
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filter += string(key.Runes)
		if key.Type == tea.KeySpace && len(key.Runes) == 0 {
			m.filter += " "
		}
		m.applyFilter()
	}
	return m, nil
}

func (m *selectModel) applyFilter() {
	m.visible = m.visible[:0]
	for _, b := range m.boards {
		if matchBoard(b, m.filter) {
			m.visible = append(m.visible, b)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// matchBoard reports whether every whitespace separated term of query is
// a case-insensitive substring of the board ID.
func matchBoard(b *board.Board, query string) bool {
	id := strings.ToLower(b.ID)
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if !strings.Contains(id, term) {
			return false
		}
	}
	return true
}

// BoardName returns the display name of a board: its file name without
// extension.
func BoardName(b *board.Board) string {
	base := path.Base(b.ID)
	return strings.TrimSuffix(base, path.Ext(base))
}

func (m *selectModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Choose a board") + "\n")
	b.WriteString(filterStyle.Render("> "+m.filter) + "\n\n")

	if len(m.visible) == 0 {
		b.WriteString(noMatchStyle.Render("  no boards match") + "\n")
	}
	for i, bd := range m.visible {
		lanes := fmt.Sprintf("%d lanes", len(bd.Lanes))
		if len(bd.Lanes) == 1 {
			lanes = "1 lane"
		}
		name := BoardName(bd)
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
			name = selectedStyle.Render(name)
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", prefix, name, idStyle.Render(bd.ID), idStyle.Render("("+lanes+")"))
	}

	b.WriteString("\n" + hintStyle.Render("type to filter | up/down to move | enter to pick | esc to cancel") + "\n")
	return b.String()
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
