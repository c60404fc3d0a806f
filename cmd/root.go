package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/studytrail/studytrail/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studytrail",
	Short: "AI study companion for course material",
	Long:  "StudyTrail — terminal app that turns course material into practice tests, flashcards, and tutoring, and tracks objective mastery as you study.",
}

func Execute() error {
	// A .env file in the working directory can carry provider API keys.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYTRAIL_DB env var)")
	rootCmd.PersistentFlags().String("student", "", "Student profile ID (overrides STUDYTRAIL_STUDENT env var)")

	rootCmd.AddCommand(moduleCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(flashcardsCmd)
	rootCmd.AddCommand(tutorCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYTRAIL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveStudentID returns the student profile ID using --student flag,
// then STUDYTRAIL_STUDENT env var, then "default".
func resolveStudentID(cmd *cobra.Command) string {
	if s, _ := cmd.Flags().GetString("student"); s != "" {
		return s
	}
	if s := os.Getenv("STUDYTRAIL_STUDENT"); s != "" {
		return s
	}
	return "default"
}
