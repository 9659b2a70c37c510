// Package tui provides the Bubble Tea quiz interface.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/gramquiz/internal/model"
	"github.com/verte-zerg/gramquiz/internal/quiz"
)

const maxContentWidth = 80

type screen int

const (
	screenQuestion screen = iota
	screenEmpty
	screenFinished
)

// Model implements the Bubble Tea quiz UI. It forwards key presses to the
// session and only reads derived values back.
type Model struct {
	session *quiz.Session
	source  string

	cursor int

	width  int
	height int

	keys     keyMap
	help     help.Model
	progress progress.Model
}

// NewModel constructs a quiz TUI model for a session. source is shown in the
// header to name the question bank in use.
func NewModel(session *quiz.Session, source string) *Model {
	m := &Model{
		session: session,
		source:  source,
		keys:    newKeyMap(),
		help:    help.New(),
		progress: progress.New(
			progress.WithSolidFill("#C89A3A"),
			progress.WithoutPercentage(),
			progress.WithWidth(maxContentWidth),
		),
	}
	m.refreshKeys()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.contentWidth()
		m.progress.Width = m.contentWidth()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
		m.refreshKeys()
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Choose):
		m.chooseAt(m.cursor)
	case key.Matches(msg, m.keys.Pick):
		m.chooseAt(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Submit):
		m.session.Submit()
	case key.Matches(msg, m.keys.Next):
		m.session.Next()
		m.cursor = 0
	case key.Matches(msg, m.keys.Difficulty):
		m.session.SetDifficulty(nextDifficulty(m.session.State().DifficultyFilter))
		m.cursor = 0
	case key.Matches(msg, m.keys.Category):
		m.session.SetCategory(nextCategory(m.session.State().CategoryFilter))
		m.cursor = 0
	case key.Matches(msg, m.keys.Clear):
		m.session.ClearFilters()
		m.cursor = 0
	case key.Matches(msg, m.keys.Restart):
		m.session.Reset()
		m.cursor = 0
	case key.Matches(msg, m.keys.RestartAll):
		m.session.ResetAll()
		m.cursor = 0
	}
}

func (m *Model) moveCursor(delta int) {
	q, ok := m.session.Current()
	if !ok || len(q.Options) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(q.Options)) % len(q.Options)
}

func (m *Model) chooseAt(idx int) {
	q, ok := m.session.Current()
	if !ok || idx < 0 || idx >= len(q.Options) {
		return
	}
	m.cursor = idx
	m.session.Select(q.Options[idx].Text)
}

func (m *Model) screen() screen {
	if m.session.Empty() {
		return screenEmpty
	}
	if m.session.State().QuizFinished {
		return screenFinished
	}
	return screenQuestion
}

// refreshKeys enables only the bindings valid for the current screen.
func (m *Model) refreshKeys() {
	st := m.session.State()
	scr := m.screen()
	onQuestion := scr == screenQuestion
	filtered := st.DifficultyFilter != model.AnyDifficulty || st.CategoryFilter != model.AnyCategory

	m.keys.Up.SetEnabled(onQuestion && !st.IsSubmitted)
	m.keys.Down.SetEnabled(onQuestion && !st.IsSubmitted)
	m.keys.Choose.SetEnabled(onQuestion && !st.IsSubmitted)
	m.keys.Pick.SetEnabled(onQuestion && !st.IsSubmitted)
	m.keys.Submit.SetEnabled(onQuestion && !st.IsSubmitted)
	m.keys.Next.SetEnabled(onQuestion && st.IsSubmitted)
	m.keys.Difficulty.SetEnabled(onQuestion)
	m.keys.Category.SetEnabled(onQuestion)
	m.keys.Clear.SetEnabled(scr == screenEmpty || (onQuestion && filtered))
	m.keys.Restart.SetEnabled(scr != screenEmpty)
	m.keys.RestartAll.SetEnabled(scr != screenEmpty)

	if onQuestion && st.CurrentIndex == m.session.Total()-1 {
		m.keys.Next.SetHelp("enter", "results")
	} else {
		m.keys.Next.SetHelp("enter", "next")
	}
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return maxContentWidth
	}
	w := m.width - 4
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 1 {
		w = 1
	}
	return w
}

func nextDifficulty(d model.Difficulty) model.Difficulty {
	return model.Difficulty((int(d) + 1) % (len(model.Difficulties()) + 1))
}

func nextCategory(c model.Category) model.Category {
	return model.Category((int(c) + 1) % (len(model.Categories()) + 1))
}
