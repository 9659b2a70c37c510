package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/gramquiz/internal/model"
	"github.com/verte-zerg/gramquiz/internal/quiz"
)

const blankPlaceholder = "____"

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	accentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	plainStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	badgeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")).Bold(true)
)

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.screen() {
	case screenEmpty:
		body = m.renderEmpty()
	case screenFinished:
		body = m.renderFinished()
	default:
		body = m.renderQuestion()
	}
	body = lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(m.keys))
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) renderHeader() string {
	score := fmt.Sprintf("Score %d/%d", m.session.Score(), m.session.Total())
	title := titleStyle.Render("GrammarQuiz")
	if m.source != "" {
		title += " " + mutedStyle.Render("("+m.source+")")
	}
	gap := m.contentWidth() - lipgloss.Width(title) - lipgloss.Width(score)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + accentStyle.Render(score)
}

func (m *Model) renderFilters() string {
	st := m.session.State()
	return mutedStyle.Render(fmt.Sprintf("Difficulty: %s  ·  Grammar point: %s",
		st.DifficultyFilter.Label(), st.CategoryFilter.Label()))
}

func (m *Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("No matching questions"),
		mutedStyle.Render("Try other filters or clear them."),
		"",
		m.renderFilters(),
	)
	return cardStyle.Render(content)
}

func (m *Model) renderQuestion() string {
	q, ok := m.session.Current()
	if !ok {
		return ""
	}
	st := m.session.State()
	total := m.session.Total()
	width := m.contentWidth()

	badges := lipgloss.JoinHorizontal(lipgloss.Center,
		badgeStyle.Render(q.Difficulty.Label()),
		badgeStyle.Render(q.Category.Label()),
	)
	counter := accentStyle.Render(fmt.Sprintf("Question %d/%d", st.CurrentIndex+1, total))

	sections := []string{
		m.renderHeader(),
		m.renderFilters(),
		m.progress.ViewAs(float64(st.CurrentIndex+1) / float64(total)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, counter, " ", badges),
		"",
		m.renderSentence(q, st, width),
		"",
		m.renderOptions(q, st),
	}
	if st.ShowExplanation {
		sections = append(sections, "", m.renderExplanation(q, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderSentence(q model.Question, st quiz.State, width int) string {
	selected, answered := st.SelectedAnswers[q.ID]
	blank := blankPlaceholder
	style := mutedStyle
	if answered {
		blank = selected
		style = accentStyle
		if st.IsSubmitted {
			if selected == q.CorrectAnswer {
				style = correctStyle
			} else {
				style = incorrectStyle
			}
		}
	}
	runes := buildSentenceRunes(q.SentenceParts(), blank, plainStyle, style.Underline(true))
	return wrapStyledRunes(runes, width)
}

func (m *Model) renderOptions(q model.Question, st quiz.State) string {
	selected, answered := st.SelectedAnswers[q.ID]
	lines := make([]string, 0, len(q.Options))
	for i, opt := range q.Options {
		pointer := "  "
		if i == m.cursor && !st.IsSubmitted {
			pointer = accentStyle.Render("> ")
		}
		isSelected := answered && selected == opt.Text
		mark := "( )"
		if isSelected {
			mark = "(•)"
		}
		label := fmt.Sprintf("%s %d. %s", mark, i+1, opt.Text)
		style := plainStyle
		suffix := ""
		switch {
		case st.IsSubmitted && opt.IsCorrect:
			style = correctStyle
			suffix = " ✓"
		case st.IsSubmitted && isSelected:
			style = incorrectStyle
			suffix = " ✗"
		case isSelected:
			style = accentStyle
		}
		lines = append(lines, pointer+style.Render(label+suffix))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderExplanation(q model.Question, width int) string {
	inner := width - cardStyle.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	text := lipgloss.NewStyle().Width(inner)
	content := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Rule"),
		text.Render(q.Explanation.Rule),
		"",
		sectionStyle.Render("Example"),
		text.Italic(true).Render(fmt.Sprintf("%q", q.Explanation.Example)),
		"",
		sectionStyle.Foreground(lipgloss.Color("#FF7875")).Render("Common mistake"),
		text.Render(q.Explanation.CommonMistake),
	)
	return cardStyle.Render(content)
}

func (m *Model) renderFinished() string {
	score := m.session.Score()
	total := m.session.Total()
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Practice complete!"),
		accentStyle.Render(quiz.Encouragement(score, total).Message()),
		"",
		fmt.Sprintf("Correct   %d/%d", score, total),
		fmt.Sprintf("Accuracy  %d%%", quiz.Accuracy(score, total)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), "", cardStyle.Render(content))
}
