package model

import (
	"fmt"
	"strings"
)

// Difficulty is a question difficulty tier. The zero value matches any tier
// and is only meaningful as a filter.
type Difficulty int

// Difficulty tiers in ascending order.
const (
	AnyDifficulty Difficulty = iota
	Beginner
	Intermediate
	Advanced
)

var difficultyNames = map[Difficulty]string{
	AnyDifficulty: "all",
	Beginner:      "beginner",
	Intermediate:  "intermediate",
	Advanced:      "advanced",
}

var difficultyLabels = map[Difficulty]string{
	AnyDifficulty: "All difficulties",
	Beginner:      "Beginner",
	Intermediate:  "Intermediate",
	Advanced:      "Advanced",
}

// Difficulties returns the concrete tiers in order.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// Label returns the display text.
func (d Difficulty) Label() string {
	if label, ok := difficultyLabels[d]; ok {
		return label
	}
	return d.String()
}

// ParseDifficulty parses a concrete difficulty. "all" is rejected.
func ParseDifficulty(s string) (Difficulty, error) {
	d, err := ParseDifficultyFilter(s)
	if err != nil {
		return AnyDifficulty, err
	}
	if d == AnyDifficulty {
		return AnyDifficulty, fmt.Errorf("difficulty must be one of %s", joinNames(Difficulties()))
	}
	return d, nil
}

// ParseDifficultyFilter parses a difficulty filter. Empty and "all" match any tier.
func ParseDifficultyFilter(s string) (Difficulty, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return AnyDifficulty, nil
	}
	for d, name := range difficultyNames {
		if name == s {
			return d, nil
		}
	}
	return AnyDifficulty, fmt.Errorf("unknown difficulty %q (expected all, %s)", s, joinNames(Difficulties()))
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Category is a grammar point. The zero value matches any category and is
// only meaningful as a filter.
type Category int

// Grammar categories.
const (
	AnyCategory Category = iota
	RelativeClause
	AdverbialClause
	NonFiniteVerb
	Conjunction
	AbsoluteConstruction
	Pronoun
	Tense
)

var categoryNames = map[Category]string{
	AnyCategory:          "all",
	RelativeClause:       "relative-clause",
	AdverbialClause:      "adverbial-clause",
	NonFiniteVerb:        "non-finite-verb",
	Conjunction:          "conjunction",
	AbsoluteConstruction: "absolute-construction",
	Pronoun:              "pronoun",
	Tense:                "tense",
}

var categoryLabels = map[Category]string{
	AnyCategory:          "All grammar points",
	RelativeClause:       "Relative clause",
	AdverbialClause:      "Adverbial clause",
	NonFiniteVerb:        "Non-finite verb",
	Conjunction:          "Conjunction",
	AbsoluteConstruction: "Absolute construction",
	Pronoun:              "Pronoun",
	Tense:                "Tense",
}

// Categories returns the concrete categories in order.
func Categories() []Category {
	return []Category{RelativeClause, AdverbialClause, NonFiniteVerb, Conjunction, AbsoluteConstruction, Pronoun, Tense}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Label returns the display text.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return c.String()
}

// ParseCategory parses a concrete category. "all" is rejected.
func ParseCategory(s string) (Category, error) {
	c, err := ParseCategoryFilter(s)
	if err != nil {
		return AnyCategory, err
	}
	if c == AnyCategory {
		return AnyCategory, fmt.Errorf("category must be one of %s", joinNames(Categories()))
	}
	return c, nil
}

// ParseCategoryFilter parses a category filter. Empty and "all" match any category.
func ParseCategoryFilter(s string) (Category, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return AnyCategory, nil
	}
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return AnyCategory, fmt.Errorf("unknown category %q (expected all, %s)", s, joinNames(Categories()))
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func joinNames[T fmt.Stringer](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}
