package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studytrail/studytrail/internal/content"
	"github.com/studytrail/studytrail/internal/llm"
	"github.com/studytrail/studytrail/internal/store"
)

var moduleCmd = &cobra.Command{
	Use:   "module",
	Short: "Manage course modules",
}

var moduleAddCmd = &cobra.Command{
	Use:   "add <material-file>",
	Short: "Add a course module from a material file",
	Long: `Add a course module from a text file of course material (use "-" for stdin).

Learning objectives are generated from the material, so this command needs a
configured LLM provider.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			return fmt.Errorf("--title is required")
		}

		material, err := readMaterial(args[0])
		if err != nil {
			return err
		}

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
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		svc := content.NewService(st.ModuleRepo(), provider, content.DefaultConfig())
		defer svc.Close()

		mod, err := svc.AddModule(ctx, title, material)
		if err != nil {
			return fmt.Errorf("add module: %w", err)
		}

		fmt.Printf("Added module %s — %s\n\n", mod.ID, mod.Title)
		printObjectives(mod.Objectives)
		return nil
	},
}

var moduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List course modules",
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

		mods, err := st.ModuleRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list modules: %w", err)
		}
		if len(mods) == 0 {
			fmt.Println("No modules yet. Add one with: studytrail module add --title <title> <file>")
			return nil
		}

		fmt.Printf("%-36s  %-10s  %-4s  %s\n", "ID", "Added", "Objs", "Title")
		fmt.Println(strings.Repeat("─", 80))
		for _, m := range mods {
			fmt.Printf("%-36s  %-10s  %-4d  %s\n",
				m.ID, m.CreatedAt.Local().Format("2006-01-02"), len(m.Objectives), m.Title)
		}
		return nil
	},
}

var moduleObjectivesCmd = &cobra.Command{
	Use:   "objectives <module-id>",
	Short: "Show or regenerate a module's learning objectives",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		regenerate, _ := cmd.Flags().GetBool("regenerate")

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

		if !regenerate {
			mod, err := st.ModuleRepo().Get(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s — %s\n\n", mod.ID, mod.Title)
			printObjectives(mod.Objectives)
			return nil
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		svc := content.NewService(st.ModuleRepo(), provider, content.DefaultConfig())
		defer svc.Close()

		objectives, err := svc.RegenerateObjectives(ctx, args[0])
		if err != nil {
			return fmt.Errorf("regenerate objectives: %w", err)
		}
		fmt.Println("Regenerated objectives:")
		fmt.Println()
		printObjectives(objectives)
		fmt.Println("\nNote: mastery is tracked per objective index; regenerating can change what each index means.")
		return nil
	},
}

func printObjectives(objectives []string) {
	for i, o := range objectives {
		fmt.Printf("  [%d] %s\n", i, o)
	}
}

// readMaterial loads the course material from path, or stdin when path is "-".
func readMaterial(path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read material: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("material is empty")
	}
	return string(data), nil
}

func init() {
	moduleAddCmd.Flags().String("title", "", "Module title (required)")

	moduleObjectivesCmd.Flags().Bool("regenerate", false, "Regenerate objectives from the stored material")

	moduleCmd.AddCommand(moduleAddCmd)
	moduleCmd.AddCommand(moduleListCmd)
	moduleCmd.AddCommand(moduleObjectivesCmd)
	moduleCmd.AddCommand(modulePreviewCmd)
}
