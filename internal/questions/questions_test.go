package questions

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/gramquiz/internal/model"
)

const sampleFile = `
[[question]]
id = 42
sentence = "She ______ here since 2010."
correct-answer = "has lived"
difficulty = "intermediate"
category = "tense"

[question.explanation]
rule = "since takes the present perfect."
example = "I have known him since school."
common-mistake = "lived ignores the link to the present."

[[question.options]]
id = "42a"
text = "lived"

[[question.options]]
id = "42b"
text = "has lived"
correct = true
`

func TestDefaultBankIsWellFormed(t *testing.T) {
	qs := Default()
	if len(qs) != 10 {
		t.Fatalf("expected 10 built-in questions, got %d", len(qs))
	}
	seen := map[int]bool{}
	for _, q := range qs {
		if seen[q.ID] {
			t.Fatalf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		if len(q.SentenceParts()) != 2 {
			t.Fatalf("question %d: expected exactly one blank", q.ID)
		}
		if len(q.Options) < 2 {
			t.Fatalf("question %d: expected at least 2 options", q.ID)
		}
		correct := 0
		for _, opt := range q.Options {
			if opt.IsCorrect {
				correct++
				if opt.Text != q.CorrectAnswer {
					t.Fatalf("question %d: correct option %q != %q", q.ID, opt.Text, q.CorrectAnswer)
				}
			}
		}
		if correct != 1 {
			t.Fatalf("question %d: expected one correct option, got %d", q.ID, correct)
		}
		if q.Difficulty == model.AnyDifficulty || q.Category == model.AnyCategory {
			t.Fatalf("question %d: missing difficulty or category", q.ID)
		}
		if q.Explanation.Rule == "" {
			t.Fatalf("question %d: missing explanation", q.ID)
		}
	}
	if qs[0].ID != 1 || qs[9].ID != 10 {
		t.Fatalf("expected bank in source order")
	}
}

func TestLoadDecodesEnumsAndOptions(t *testing.T) {
	qs, err := Load(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	q := qs[0]
	if q.ID != 42 || q.Difficulty != model.Intermediate || q.Category != model.Tense {
		t.Fatalf("unexpected question: %+v", q)
	}
	if len(q.Options) != 2 || !q.Options[1].IsCorrect || q.Options[0].IsCorrect {
		t.Fatalf("unexpected options: %+v", q.Options)
	}
	if q.Explanation.CommonMistake == "" {
		t.Fatalf("expected explanation to decode")
	}
}

func TestLoadRejectsUnknownCategory(t *testing.T) {
	bad := strings.Replace(sampleFile, `"tense"`, `"idiom"`, 1)
	if _, err := Load(strings.NewReader(bad)); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	if _, err := Load(strings.NewReader("")); err == nil {
		t.Fatalf("expected error for empty file")
	}
}

type fakeLister struct {
	qs  []model.Question
	err error
}

func (f fakeLister) ListQuestions(context.Context) ([]model.Question, error) {
	return f.qs, f.err
}

func TestResolveOrder(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "questions.toml")
	if err := os.WriteFile(path, []byte(sampleFile), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	qs, src, err := Resolve(ctx, path, fakeLister{qs: Default()})
	if err != nil || src != SourceFile || len(qs) != 1 {
		t.Fatalf("expected file source, got %v %d %v", src, len(qs), err)
	}

	bank := []model.Question{{ID: 7}, {ID: 8}}
	qs, src, err = Resolve(ctx, "", fakeLister{qs: bank})
	if err != nil || src != SourceBank || len(qs) != 2 {
		t.Fatalf("expected bank source, got %v %d %v", src, len(qs), err)
	}

	qs, src, err = Resolve(ctx, "", fakeLister{})
	if err != nil || src != SourceDefault || len(qs) != 10 {
		t.Fatalf("expected default source, got %v %d %v", src, len(qs), err)
	}

	if _, _, err := Resolve(ctx, "", fakeLister{err: errors.New("boom")}); err == nil {
		t.Fatalf("expected bank error to propagate")
	}
	if _, _, err := Resolve(ctx, filepath.Join(t.TempDir(), "missing.toml"), nil); err == nil {
		t.Fatalf("expected missing file error")
	}
}

func TestRenderList(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderList(&buf, Default()[:2], 0); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "ID Difficulty Category") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " 1 Beginner") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	if lines[len(lines)-1] != "2 question(s)" {
		t.Fatalf("unexpected footer: %q", lines[len(lines)-1])
	}
}

func TestRenderListTruncatesToWidth(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderList(&buf, Default(), 60); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, line := range strings.Split(buf.String(), "\n") {
		if displayWidth(line) > 60 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestRenderListEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderList(&buf, nil, 0); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No questions") {
		t.Fatalf("expected empty notice, got %q", buf.String())
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	lines := formatTable([]string{"ID", "Sentence"}, [][]string{{"1", "a"}, {"10", "bb"}}, map[int]bool{0: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "ID Sentence" || lines[1] != " 1 a" || lines[2] != "10 bb" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}
