package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studytrail/studytrail/internal/llm"
	"github.com/studytrail/studytrail/internal/mastery"
	"github.com/studytrail/studytrail/internal/quizgen"
	"github.com/studytrail/studytrail/internal/store"
)

var modulePreviewCmd = &cobra.Command{
	Use:   "preview <module-id>",
	Short: "Preview generated questions for a module (no mastery tracking)",
	Long: `Generate and interactively answer questions for a module.

This is a stateless tool — answers are graded on the spot but nothing is
recorded against your mastery history. Useful for evaluating question quality
after adding new material.`,
	Args: cobra.ExactArgs(1),
	RunE: runModulePreview,
}

func runModulePreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")

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

	// No EventRepo — preview calls are not logged.
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := quizgen.New(provider, quizgen.DefaultConfig())
	quiz, err := gen.Generate(ctx, quizgen.GenerateInput{
		ModuleID:     mod.ID,
		Title:        mod.Title,
		Material:     mod.Material,
		Objectives:   mod.Objectives,
		NumQuestions: count,
	})
	if err != nil {
		return fmt.Errorf("generate questions: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("Module: %s — %s\n", mod.ID, mod.Title)
	fmt.Printf("Generated %d questions.\n\n", len(quiz.Questions))

	var correct int
	for i, q := range quiz.Questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(quiz.Questions))
		fmt.Println(q.Text)
		if q.Format == mastery.FormatMultipleChoice {
			for j, c := range q.Choices {
				fmt.Printf("  %d) %s\n", j+1, c)
			}
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		if quizgen.CheckAnswer(answer, &q) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Answer)
		}
		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(quiz.Questions))
	return nil
}

func init() {
	modulePreviewCmd.Flags().Int("count", 5, "Number of questions to generate")
}
