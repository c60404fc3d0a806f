package cmd

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/studytrail/studytrail/internal/evaluation"
	"github.com/studytrail/studytrail/internal/llm"
	"github.com/studytrail/studytrail/internal/mastery"
	"github.com/studytrail/studytrail/internal/quizgen"
	"github.com/studytrail/studytrail/internal/store"
	"github.com/studytrail/studytrail/internal/tui"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <module-id>",
	Short: "Take a practice test for a module",
	Long: `Generate a practice test for a module and answer it interactively.

Answers are graded, short answers get a reasoning review, and the submission
is applied to your mastery record for the test's weakest objective.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("questions")
		focus, _ := cmd.Flags().GetStringSlice("focus")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		mod, err := st.ModuleRepo().Get(ctx, args[0])
		if err != nil {
			return err
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		focusIdx, err := parseFocus(focus, len(mod.Objectives))
		if err != nil {
			return err
		}

		studentID := resolveStudentID(cmd)

		// Prior question texts keep the generator from repeating itself.
		var prior []string
		for i := range mod.Objectives {
			history, err := st.EventRepo().AttemptHistory(ctx, studentID, mod.ID, i)
			if err != nil {
				return fmt.Errorf("objective %d history: %w", i, err)
			}
			for _, h := range history {
				if h.QuestionText != "" {
					prior = append(prior, h.QuestionText)
				}
			}
		}

		gen := quizgen.New(provider, quizgen.DefaultConfig())
		quiz, err := gen.Generate(ctx, quizgen.GenerateInput{
			ModuleID:        mod.ID,
			Title:           mod.Title,
			Material:        mod.Material,
			Objectives:      mod.Objectives,
			FocusObjectives: focusIdx,
			NumQuestions:    count,
			PriorQuestions:  prior,
		})
		if err != nil {
			return fmt.Errorf("generate practice test: %w", err)
		}

		masterySv := mastery.NewService(st.EventRepo())
		reviewSv := evaluation.NewService(provider)

		model := tui.NewPractice(quiz, mod.Objectives, masterySv, reviewSv,
			studentID, uuid.NewString())
		return tui.RunPractice(model)
	},
}

// parseFocus converts objective index strings and validates them against the
// module's objective count.
func parseFocus(focus []string, numObjectives int) ([]int, error) {
	if len(focus) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(focus))
	for _, f := range focus {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid --focus value %q: %w", f, err)
		}
		if n < 0 || n >= numObjectives {
			return nil, fmt.Errorf("--focus index %d out of range (module has %d objectives)", n, numObjectives)
		}
		out = append(out, n)
	}
	return out, nil
}

func init() {
	practiceCmd.Flags().Int("questions", 0, "Number of questions (0 = default)")
	practiceCmd.Flags().StringSlice("focus", nil, "Objective indices to focus on (e.g. --focus 0,2)")
}
