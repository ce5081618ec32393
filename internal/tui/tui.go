package tui

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"github.com/aayushbajaj/lbsolver/internal/letterbox"
	"github.com/aayushbajaj/lbsolver/internal/solver"
	tea "github.com/charmbracelet/bubbletea"
)

const boxLetters = letterbox.GroupCount * letterbox.GroupSize

type Phase int

const (
	PhaseInput Phase = iota
	PhaseSolving
	PhaseResults
)

// Options configures the interactive solver.
type Options struct {
	Words    []string
	FoldCase bool
	Logger   *slog.Logger
}

// Model is the interactive solver: type the box, solve it, then browse the
// chains and knock words out to see alternatives.
type Model struct {
	opts Options

	letters  []rune
	ignore   []string
	phase    Phase
	result   *solver.Result
	dictSize int
	selected int
	err      error
	width    int
	height   int
}

type solvedMsg struct {
	result   solver.Result
	dictSize int
	err      error
}

func New(opts Options) Model {
	return Model{opts: opts, phase: PhaseInput}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Groups splits the typed letters into sides of three.
func (m Model) Groups() []string {
	var groups []string
	for i := 0; i < len(m.letters); i += letterbox.GroupSize {
		end := min(i+letterbox.GroupSize, len(m.letters))
		groups = append(groups, string(m.letters[i:end]))
	}
	return groups
}

func (m Model) Phase() Phase {
	return m.phase
}

func (m Model) Ignore() []string {
	return slices.Clone(m.ignore)
}

// Result returns the last search result, or nil before the first solve.
func (m Model) Result() *solver.Result {
	return m.result
}

func (m Model) solve() tea.Cmd {
	groups := m.Groups()
	ignore := slices.Clone(m.ignore)
	opts := m.opts
	return func() tea.Msg {
		box, err := letterbox.NewBox(groups...)
		if err != nil {
			return solvedMsg{err: err}
		}
		dict := letterbox.Build(box, opts.Words)
		res := solver.New(dict, solver.WithLogger(opts.Logger)).Solve(ignore)
		return solvedMsg{result: res, dictSize: dict.Len()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch m.phase {
		case PhaseInput:
			return m.updateInput(msg)
		case PhaseResults:
			return m.updateResults(msg)
		}

	case solvedMsg:
		m.phase = PhaseResults
		m.selected = 0
		m.err = msg.err
		if msg.err == nil {
			m.result = &msg.result
			m.dictSize = msg.dictSize
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.letters) > 0 {
			m.letters = m.letters[:len(m.letters)-1]
		}

	case tea.KeyEnter:
		if len(m.letters) == boxLetters {
			m.phase = PhaseSolving
			return m, m.solve()
		}

	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if len(m.letters) == boxLetters || unicode.IsSpace(r) {
				continue
			}
			if m.opts.FoldCase {
				r = unicode.ToLower(r)
			}
			m.letters = append(m.letters, r)
		}
	}
	return m, nil
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var solutions []solver.Chain
	if m.result != nil {
		solutions = m.result.Solutions
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(solutions)-1 {
			m.selected++
		}

	case "x":
		if len(solutions) == 0 {
			return m, nil
		}
		m.ignore = append(m.ignore, solutions[m.selected][0])
		m.phase = PhaseSolving
		return m, m.solve()

	case "u":
		if len(m.ignore) == 0 {
			return m, nil
		}
		m.ignore = m.ignore[:len(m.ignore)-1]
		m.phase = PhaseSolving
		return m, m.solve()

	case "n":
		return New(m.opts), nil
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Letter Boxed Solver"))
	b.WriteString("\n\n")
	b.WriteString(renderBox(m.letters, m.phase == PhaseInput))
	b.WriteString("\n\n")

	switch m.phase {
	case PhaseInput:
		b.WriteString(labelStyle.Render(fmt.Sprintf("Type the %d letters, three per side, starting at the top.", boxLetters)))
		b.WriteString(helpStyle.Render("\nenter: solve • backspace: delete • esc: quit"))

	case PhaseSolving:
		b.WriteString(labelStyle.Render("Solving..."))

	case PhaseResults:
		b.WriteString(m.renderResults())
		b.WriteString(helpStyle.Render("\n↑/↓: select • x: ignore first word • u: undo ignore • n: new box • q: quit"))
	}

	return b.String()
}

func (m Model) renderResults() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.result == nil {
		return ""
	}

	var b strings.Builder
	if len(m.ignore) > 0 {
		b.WriteString(labelStyle.Render("Ignore:") + " " + renderList(m.ignore, wordStyle) + "\n")
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("%d usable words", m.dictSize)))
	b.WriteString("\n\n")

	if len(m.result.Solutions) == 0 {
		b.WriteString(errorStyle.Render("No solutions found"))
		b.WriteString("\n")
	}
	for i, c := range m.result.Solutions {
		line := strings.Join(c, " → ")
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + wordStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(renderSummary(*m.result)))
	return b.String()
}
