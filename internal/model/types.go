// Package model defines shared data structures.
package model

import "strings"

// Blank marks the gap in a question sentence.
const Blank = "______"

// Config defines quiz settings.
type Config struct {
	Difficulty    Difficulty
	Category      Category
	QuestionsPath string
}

// Option is a single answer choice.
type Option struct {
	ID        string `toml:"id"`
	Text      string `toml:"text"`
	IsCorrect bool   `toml:"correct"`
}

// Explanation is shown after an answer is submitted.
type Explanation struct {
	Rule          string `toml:"rule"`
	Example       string `toml:"example"`
	CommonMistake string `toml:"common-mistake"`
}

// Question is an immutable sentence-completion question.
type Question struct {
	ID            int         `toml:"id"`
	Sentence      string      `toml:"sentence"`
	Options       []Option    `toml:"options"`
	CorrectAnswer string      `toml:"correct-answer"`
	Explanation   Explanation `toml:"explanation"`
	Difficulty    Difficulty  `toml:"difficulty"`
	Category      Category    `toml:"category"`
}

// SentenceParts splits the sentence around the blank marker.
func (q Question) SentenceParts() []string {
	return strings.Split(q.Sentence, Blank)
}
