package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studytrail/studytrail/internal/flashcards"
	"github.com/studytrail/studytrail/internal/llm"
	"github.com/studytrail/studytrail/internal/store"
)

var flashcardsCmd = &cobra.Command{
	Use:   "flashcards <module-id>",
	Short: "Generate and flip through flashcards for a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("cards")

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

		cfg := flashcards.DefaultConfig()
		if count > 0 {
			cfg.NumCards = count
		}
		deck, err := flashcards.NewService(provider, cfg).Generate(ctx, flashcards.GenerateInput{
			ModuleID:   mod.ID,
			Title:      mod.Title,
			Material:   mod.Material,
			Objectives: mod.Objectives,
		})
		if err != nil {
			return fmt.Errorf("generate flashcards: %w", err)
		}

		fmt.Printf("%s — %d cards\n\n", deck.Title, len(deck.Cards))
		scanner := bufio.NewScanner(os.Stdin)
		for i, card := range deck.Cards {
			fmt.Printf("── Card %d/%d ──\n", i+1, len(deck.Cards))
			fmt.Println(card.Front)
			fmt.Print("\n[enter to flip] ")
			if !scanner.Scan() {
				fmt.Println()
				return nil
			}
			fmt.Println(card.Back)
			fmt.Println(strings.Repeat("─", 40))
		}
		fmt.Println("Done.")
		return nil
	},
}

func init() {
	flashcardsCmd.Flags().Int("cards", 0, "Number of cards to generate (0 = default)")
}
