package quiz

import (
	"math"

	"github.com/verte-zerg/gramquiz/internal/model"
)

// FilterQuestions returns the questions matching both filters, in source order.
// AnyDifficulty and AnyCategory match every question.
func FilterQuestions(all []model.Question, difficulty model.Difficulty, category model.Category) []model.Question {
	out := make([]model.Question, 0, len(all))
	for _, q := range all {
		if difficulty != model.AnyDifficulty && q.Difficulty != difficulty {
			continue
		}
		if category != model.AnyCategory && q.Category != category {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Score counts recorded answers that equal the correct answer of the question
// with the same id in all. Ids missing from all count as zero.
func Score(selected map[int]string, all []model.Question) int {
	byID := make(map[int]model.Question, len(all))
	for _, q := range all {
		byID[q.ID] = q
	}
	score := 0
	for id, ans := range selected {
		q, ok := byID[id]
		if !ok {
			continue
		}
		if q.CorrectAnswer == ans {
			score++
		}
	}
	return score
}

// Accuracy returns score/total as a rounded percentage.
func Accuracy(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// Tier is an encouragement level for a finished quiz.
type Tier int

// Encouragement tiers, best first.
const (
	TierPerfect Tier = iota + 1
	TierExcellent
	TierGood
	TierKeepPracticing
)

// Message returns the fixed message for the tier.
func (t Tier) Message() string {
	switch t {
	case TierPerfect:
		return "Outstanding! You're a grammar master!"
	case TierExcellent:
		return "Excellent work! Keep it up!"
	case TierGood:
		return "Nicely done! Keep pushing!"
	default:
		return "Don't give up, practice makes progress!"
	}
}

// Encouragement picks a tier from the score ratio. Only an exact match is
// perfect; score may exceed total after re-filtering and then falls through to
// the ratio bounds, which are inclusive and checked from the top.
func Encouragement(score, total int) Tier {
	if total <= 0 {
		return TierKeepPracticing
	}
	ratio := float64(score) / float64(total)
	switch {
	case score == total:
		return TierPerfect
	case ratio >= 0.8:
		return TierExcellent
	case ratio >= 0.6:
		return TierGood
	default:
		return TierKeepPracticing
	}
}
