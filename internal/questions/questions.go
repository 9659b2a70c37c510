// Package questions loads question banks.
package questions

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/gramquiz/internal/model"
)

//go:embed default.toml
var defaultBank []byte

// Source names where a question list came from.
type Source string

// Question sources in resolution order.
const (
	SourceFile    Source = "file"
	SourceBank    Source = "bank"
	SourceDefault Source = "default"
)

// Lister returns the questions stored in a bank.
type Lister interface {
	ListQuestions(ctx context.Context) ([]model.Question, error)
}

type questionFile struct {
	Questions []model.Question `toml:"question"`
}

// Load decodes a TOML question file.
func Load(r io.Reader) ([]model.Question, error) {
	var f questionFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("question file has no questions")
	}
	return f.Questions, nil
}

// LoadFile reads a TOML question file from path.
func LoadFile(path string) ([]model.Question, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only question file.
			_ = cerr
		}
	}()
	return Load(file)
}

// Default returns the built-in question bank.
func Default() []model.Question {
	qs, err := Load(bytes.NewReader(defaultBank))
	if err != nil {
		panic(fmt.Sprintf("embedded question bank: %v", err))
	}
	return qs
}

// Resolve picks the question list for a quiz run: an explicit file, else the
// stored bank when it has questions, else the built-in bank.
func Resolve(ctx context.Context, path string, bank Lister) ([]model.Question, Source, error) {
	if path != "" {
		qs, err := LoadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load questions from %s: %w", path, err)
		}
		return qs, SourceFile, nil
	}
	if bank != nil {
		qs, err := bank.ListQuestions(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read question bank: %w", err)
		}
		if len(qs) > 0 {
			return qs, SourceBank, nil
		}
	}
	return Default(), SourceDefault, nil
}
