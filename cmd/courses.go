package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/learnhub/internal/catalog"
)

var coursesCmd = &cobra.Command{
	Use:   "courses [query]",
	Short: "Search the course catalog",
	Long:  `Filters the catalog by free text, category and level, the same way the course browser does.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCourses,
}

func init() {
	coursesCmd.Flags().String("category", catalog.All, "filter by category")
	coursesCmd.Flags().String("level", catalog.All, "filter by level: Beginner, Intermediate, Advanced")
	coursesCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(coursesCmd)
}

func runCourses(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := catalog.LoadFile(cfg.Site.CatalogFile)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	criteria := catalog.DefaultCriteria()
	if len(args) == 1 {
		criteria.Query = args[0]
	}
	criteria.Category, _ = cmd.Flags().GetString("category")
	criteria.Level, _ = cmd.Flags().GetString("level")
	if criteria.Level != catalog.All {
		if _, err := catalog.ParseLevel(criteria.Level); err != nil {
			return err
		}
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	results := cat.Filter(criteria)
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Printf("Showing %d of %d courses\n\n", len(results), cat.Len())
	if len(results) == 0 {
		fmt.Println("No courses found. Try adjusting your search or filters.")
		return nil
	}
	for _, c := range results {
		fmt.Printf("  %-8s %s\n", c.ID, c.Title)
		fmt.Printf("           %s · %s · %s · %.1f★\n", c.Instructor, c.Category, c.Level, c.Rating)
		fmt.Printf("           %s\n\n", truncate(strings.TrimSpace(c.Description), 100))
	}
	return nil
}
