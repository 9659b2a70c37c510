// Package quiz implements the quiz session state machine.
package quiz

import (
	"maps"

	"github.com/verte-zerg/gramquiz/internal/model"
)

// State is the mutable part of a quiz run.
type State struct {
	CurrentIndex     int
	SelectedAnswers  map[int]string
	IsSubmitted      bool
	ShowExplanation  bool
	DifficultyFilter model.Difficulty
	CategoryFilter   model.Category
	QuizFinished     bool
}

// Session owns the state for one quiz run over a fixed question list.
// It is not safe for concurrent use.
type Session struct {
	questions []model.Question
	state     State
}

// New starts a session with all filters cleared.
func New(questions []model.Question) *Session {
	return &Session{
		questions: questions,
		state: State{
			SelectedAnswers: map[int]string{},
		},
	}
}

// Questions returns the full, unfiltered question list.
func (s *Session) Questions() []model.Question {
	return s.questions
}

// State returns a copy of the current state.
func (s *Session) State() State {
	st := s.state
	st.SelectedAnswers = maps.Clone(s.state.SelectedAnswers)
	return st
}

// Filtered returns the questions matching the active filters.
func (s *Session) Filtered() []model.Question {
	return FilterQuestions(s.questions, s.state.DifficultyFilter, s.state.CategoryFilter)
}

// Total returns the number of questions in the filtered set.
func (s *Session) Total() int {
	return len(s.Filtered())
}

// Empty reports whether the active filters exclude every question.
func (s *Session) Empty() bool {
	return s.Total() == 0
}

// Current returns the question at the current index of the filtered set.
func (s *Session) Current() (model.Question, bool) {
	filtered := s.Filtered()
	if s.state.CurrentIndex < 0 || s.state.CurrentIndex >= len(filtered) {
		return model.Question{}, false
	}
	return filtered[s.state.CurrentIndex], true
}

// Answer returns the recorded answer for a question id.
func (s *Session) Answer(id int) (string, bool) {
	ans, ok := s.state.SelectedAnswers[id]
	return ans, ok
}

// Select records text as the answer to the current question. It is a no-op
// once the current question has been submitted.
func (s *Session) Select(text string) {
	if s.state.IsSubmitted {
		return
	}
	q, ok := s.Current()
	if !ok {
		return
	}
	s.state.SelectedAnswers[q.ID] = text
}

// Submit locks the answer for the current question and reveals the
// explanation. It is a no-op when nothing has been selected.
func (s *Session) Submit() {
	if s.state.IsSubmitted {
		return
	}
	q, ok := s.Current()
	if !ok {
		return
	}
	if ans, answered := s.state.SelectedAnswers[q.ID]; !answered || ans == "" {
		return
	}
	s.state.IsSubmitted = true
	s.state.ShowExplanation = true
}

// Next advances to the next filtered question, or marks the quiz finished
// when the current question is the last one. Submission is not required.
func (s *Session) Next() {
	if s.state.CurrentIndex < s.Total()-1 {
		s.state.CurrentIndex++
		s.state.IsSubmitted = false
		s.state.ShowExplanation = false
		return
	}
	s.state.QuizFinished = true
}

// SetDifficulty changes the difficulty filter and restarts at the first
// matching question. Recorded answers are kept.
func (s *Session) SetDifficulty(d model.Difficulty) {
	s.state.DifficultyFilter = d
	s.restartFiltered()
}

// SetCategory changes the category filter and restarts at the first
// matching question. Recorded answers are kept.
func (s *Session) SetCategory(c model.Category) {
	s.state.CategoryFilter = c
	s.restartFiltered()
}

// ClearFilters sets both filters back to "All".
func (s *Session) ClearFilters() {
	s.state.DifficultyFilter = model.AnyDifficulty
	s.state.CategoryFilter = model.AnyCategory
	s.restartFiltered()
}

// Reset clears progress and answers. Filters are kept.
func (s *Session) Reset() {
	s.state.CurrentIndex = 0
	s.state.SelectedAnswers = map[int]string{}
	s.state.IsSubmitted = false
	s.state.ShowExplanation = false
	s.state.QuizFinished = false
}

// ResetAll clears filters, progress and answers.
func (s *Session) ResetAll() {
	s.ClearFilters()
	s.Reset()
}

// Score counts correct answers across the full question list.
func (s *Session) Score() int {
	return Score(s.state.SelectedAnswers, s.questions)
}

func (s *Session) restartFiltered() {
	s.state.CurrentIndex = 0
	s.state.IsSubmitted = false
	s.state.ShowExplanation = false
}
