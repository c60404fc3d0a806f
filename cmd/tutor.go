package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studytrail/studytrail/internal/llm"
	"github.com/studytrail/studytrail/internal/mastery"
	"github.com/studytrail/studytrail/internal/store"
	"github.com/studytrail/studytrail/internal/tutor"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor <module-id>",
	Short: "Chat with a tutor about a module",
	Long: `Start a tutoring conversation grounded in a module's material.

The tutor sees your current standing on each objective and steers toward the
ones you haven't mastered yet.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		masterySv := mastery.NewService(st.EventRepo())
		studentID := resolveStudentID(cmd)

		standings := make([]tutor.ObjectiveStanding, len(mod.Objectives))
		for i, text := range mod.Objectives {
			result, err := masterySv.Standing(ctx, studentID, mod.ID, i)
			if err != nil {
				return fmt.Errorf("objective %d standing: %w", i, err)
			}
			standings[i] = tutor.ObjectiveStanding{Index: i, Text: text, Result: result}
		}

		svc := tutor.NewService(provider, tutor.DefaultConfig())
		sess := svc.NewSession(*mod, standings)

		fmt.Printf("Tutoring session for %q. Type your questions; \"exit\" to leave.\n\n", mod.Title)
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you> ")
			if !scanner.Scan() {
				fmt.Println()
				return nil
			}
			msg := strings.TrimSpace(scanner.Text())
			if msg == "" {
				continue
			}
			if msg == "exit" || msg == "quit" {
				return nil
			}

			reply, err := svc.Respond(ctx, sess, msg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "tutor:", err)
				continue
			}
			fmt.Printf("\n%s\n\n", reply)
		}
	},
}
