// Package store handles SQLite persistence of the question bank.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/verte-zerg/gramquiz/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for stored questions.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			sentence TEXT NOT NULL,
			correct_answer TEXT NOT NULL,
			rule TEXT NOT NULL,
			example TEXT NOT NULL,
			common_mistake TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			category TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS question_options (
			question_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			option_id TEXT NOT NULL,
			text TEXT NOT NULL,
			is_correct INTEGER NOT NULL,
			PRIMARY KEY (question_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_position ON questions(position);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceQuestions swaps the stored bank for qs, keeping their order.
func (s *Store) ReplaceQuestions(ctx context.Context, qs []model.Question) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM question_options`); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return err
	}

	qStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO questions (id, position, sentence, correct_answer, rule, example, common_mistake, difficulty, category)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := qStmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	oStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO question_options (question_id, position, option_id, text, is_correct)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := oStmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	for pos, q := range qs {
		if _, err = qStmt.ExecContext(ctx,
			q.ID,
			pos,
			q.Sentence,
			q.CorrectAnswer,
			q.Explanation.Rule,
			q.Explanation.Example,
			q.Explanation.CommonMistake,
			q.Difficulty.String(),
			q.Category.String(),
		); err != nil {
			return err
		}
		for optPos, opt := range q.Options {
			if _, err = oStmt.ExecContext(ctx, q.ID, optPos, opt.ID, opt.Text, opt.IsCorrect); err != nil {
				return err
			}
		}
	}

	err = tx.Commit()
	return err
}

// CountQuestions returns the number of stored questions.
func (s *Store) CountQuestions(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ListQuestions returns the stored questions in import order.
func (s *Store) ListQuestions(ctx context.Context) ([]model.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, sentence, correct_answer, rule, example, common_mistake, difficulty, category
		 FROM questions
		 ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.Question
	index := map[int]int{}
	for rows.Next() {
		var q model.Question
		var difficulty, category string
		if err := rows.Scan(&q.ID, &q.Sentence, &q.CorrectAnswer, &q.Explanation.Rule, &q.Explanation.Example, &q.Explanation.CommonMistake, &difficulty, &category); err != nil {
			return nil, err
		}
		if q.Difficulty, err = model.ParseDifficulty(difficulty); err != nil {
			return nil, err
		}
		if q.Category, err = model.ParseCategory(category); err != nil {
			return nil, err
		}
		index[q.ID] = len(result)
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, nil
	}
	if err := s.attachOptions(ctx, result, index); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) attachOptions(ctx context.Context, qs []model.Question, index map[int]int) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, option_id, text, is_correct
		 FROM question_options
		 ORDER BY question_id, position ASC`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	for rows.Next() {
		var questionID int
		var opt model.Option
		if err := rows.Scan(&questionID, &opt.ID, &opt.Text, &opt.IsCorrect); err != nil {
			return err
		}
		i, ok := index[questionID]
		if !ok {
			continue
		}
		qs[i].Options = append(qs[i].Options, opt)
	}
	return rows.Err()
}
