package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studytrail/studytrail/internal/mastery"
	"github.com/studytrail/studytrail/internal/store"
	"github.com/studytrail/studytrail/internal/tui"
)

var progressCmd = &cobra.Command{
	Use:   "progress <module-id>",
	Short: "Show mastery progress for a module",
	Args:  cobra.ExactArgs(1),
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

		masterySv := mastery.NewService(st.EventRepo())
		studentID := resolveStudentID(cmd)

		standings := make([]tui.Standing, len(mod.Objectives))
		for i, text := range mod.Objectives {
			result, err := masterySv.Standing(ctx, studentID, mod.ID, i)
			if err != nil {
				return fmt.Errorf("objective %d standing: %w", i, err)
			}
			standings[i] = tui.Standing{Index: i, Text: text, Result: result}
		}

		fmt.Print(tui.RenderDashboard(mod.Title, standings))
		return nil
	},
}
