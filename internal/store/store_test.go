package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/verte-zerg/gramquiz/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "gramquiz.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func sampleQuestions() []model.Question {
	return []model.Question{
		{
			ID:            5,
			Sentence:      "Weather ______, we will go.",
			CorrectAnswer: "permitting",
			Options: []model.Option{
				{ID: "5a", Text: "permits"},
				{ID: "5b", Text: "permitting", IsCorrect: true},
			},
			Explanation: model.Explanation{Rule: "rule", Example: "example", CommonMistake: "mistake"},
			Difficulty:  model.Advanced,
			Category:    model.AbsoluteConstruction,
		},
		{
			ID:            2,
			Sentence:      "The boy ______ is here.",
			CorrectAnswer: "who",
			Options: []model.Option{
				{ID: "2a", Text: "who", IsCorrect: true},
				{ID: "2b", Text: "which"},
				{ID: "2c", Text: "whom"},
			},
			Explanation: model.Explanation{Rule: "r", Example: "e", CommonMistake: "m"},
			Difficulty:  model.Beginner,
			Category:    model.RelativeClause,
		},
	}
}

func TestEmptyBank(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	qs, err := st.ListQuestions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(qs) != 0 {
		t.Fatalf("expected empty bank, got %d", len(qs))
	}
	n, err := st.CountQuestions(ctx)
	if err != nil || n != 0 {
		t.Fatalf("expected count 0, got %d (%v)", n, err)
	}
}

func TestReplaceAndListKeepsOrder(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	want := sampleQuestions()
	if err := st.ReplaceQuestions(ctx, want); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, err := st.ListQuestions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestReplaceOverwritesPreviousBank(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.ReplaceQuestions(ctx, sampleQuestions()); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := st.ReplaceQuestions(ctx, sampleQuestions()[1:]); err != nil {
		t.Fatalf("replace again: %v", err)
	}
	n, err := st.CountQuestions(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 question after replace, got %d", n)
	}
	qs, err := st.ListQuestions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(qs[0].Options) != 3 {
		t.Fatalf("expected stale options to be removed, got %+v", qs[0].Options)
	}
}

func TestReplaceRollsBackOnDuplicateID(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.ReplaceQuestions(ctx, sampleQuestions()); err != nil {
		t.Fatalf("replace: %v", err)
	}
	dup := sampleQuestions()
	dup[1].ID = dup[0].ID
	if err := st.ReplaceQuestions(ctx, dup); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}
	n, err := st.CountQuestions(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected previous bank to survive failed replace, got %d", n)
	}
}
