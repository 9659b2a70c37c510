// Package main provides the CLI entrypoint for gramquiz.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/gramquiz/internal/config"
	"github.com/verte-zerg/gramquiz/internal/model"
	"github.com/verte-zerg/gramquiz/internal/questions"
	"github.com/verte-zerg/gramquiz/internal/quiz"
	"github.com/verte-zerg/gramquiz/internal/store"
	"github.com/verte-zerg/gramquiz/internal/tui"
)

const defaultFilter = "all"

var (
	quizDifficulty string
	quizCategory   string
	quizQuestions  string

	listDifficulty string
	listCategory   string
	listQuestions  string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gramquiz",
		Short:         "TUI grammar quiz",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runQuizCmd,
	}

	rootCmd.Flags().StringVar(&quizDifficulty, "difficulty", defaultFilter, "difficulty filter ("+difficultyChoices()+")")
	rootCmd.Flags().StringVar(&quizCategory, "category", defaultFilter, "grammar point filter ("+categoryChoices()+")")
	rootCmd.Flags().StringVar(&quizQuestions, "questions", "", "TOML question file (overrides the stored bank)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newListCmd())

	return rootCmd
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "difficulty", &quizDifficulty, fileCfg.Quiz.Difficulty)
	applyStringConfig(cmd, "category", &quizCategory, fileCfg.Quiz.Category)
	applyStringConfig(cmd, "questions", &quizQuestions, fileCfg.Quiz.Questions)

	cfg, err := buildConfig(quizDifficulty, quizCategory, quizQuestions)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("gramquiz needs an interactive terminal; use `gramquiz list` to print questions")
	}

	qs, source, err := loadQuestions(cmd.Context(), cfg.QuestionsPath)
	if err != nil {
		return err
	}

	session := quiz.New(qs)
	if cfg.Difficulty != model.AnyDifficulty {
		session.SetDifficulty(cfg.Difficulty)
	}
	if cfg.Category != model.AnyCategory {
		session.SetCategory(cfg.Category)
	}

	m := tui.NewModel(session, string(source))
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored question bank with a TOML question file",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportCmd,
	}
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	qs, err := questions.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if err := st.ReplaceQuestions(cmd.Context(), qs); err != nil {
		return fmt.Errorf("failed to store questions: %w", err)
	}
	logErrf("Imported %d question(s) into %s\n", len(qs), config.DefaultDBPath())
	return nil
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print questions matching the filters",
		Args:  cobra.NoArgs,
		RunE:  runListCmd,
	}
	cmd.Flags().StringVar(&listDifficulty, "difficulty", defaultFilter, "difficulty filter ("+difficultyChoices()+")")
	cmd.Flags().StringVar(&listCategory, "category", defaultFilter, "grammar point filter ("+categoryChoices()+")")
	cmd.Flags().StringVar(&listQuestions, "questions", "", "TOML question file (overrides the stored bank)")
	return cmd
}

func runListCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(listDifficulty, listCategory, listQuestions)
	if err != nil {
		return err
	}
	qs, source, err := loadQuestions(cmd.Context(), cfg.QuestionsPath)
	if err != nil {
		return err
	}
	logErrf("Questions from %s bank\n", source)

	width := 0
	if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = w
		}
	}
	filtered := quiz.FilterQuestions(qs, cfg.Difficulty, cfg.Category)
	if err := questions.RenderList(cmd.OutOrStdout(), filtered, width); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// loadQuestions resolves the question source. The stored bank is only opened
// when no explicit file is given.
func loadQuestions(ctx context.Context, path string) ([]model.Question, questions.Source, error) {
	if path != "" {
		return questions.Resolve(ctx, path, nil)
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open question bank, using built-in questions: %v\n", err)
		return questions.Resolve(ctx, "", nil)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return questions.Resolve(ctx, "", st)
}

func buildConfig(difficulty, category, path string) (model.Config, error) {
	d, err := model.ParseDifficultyFilter(difficulty)
	if err != nil {
		return model.Config{}, fmt.Errorf("invalid --difficulty: %w", err)
	}
	c, err := model.ParseCategoryFilter(category)
	if err != nil {
		return model.Config{}, fmt.Errorf("invalid --category: %w", err)
	}
	return model.Config{
		Difficulty:    d,
		Category:      c,
		QuestionsPath: strings.TrimSpace(path),
	}, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func difficultyChoices() string {
	names := []string{defaultFilter}
	for _, d := range model.Difficulties() {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}

func categoryChoices() string {
	names := []string{defaultFilter}
	for _, c := range model.Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# gramquiz configuration
# Uncomment a value to enable it. CLI flags override config values.

[quiz]
# difficulty = %q      # One of: %s
# category = %q        # One of: %s
# questions = ""          # TOML question file; overrides the imported bank
`,
		defaultFilter,
		difficultyChoices(),
		defaultFilter,
		categoryChoices(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
