package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/learnhub/internal/diagnostics"
)

var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Show recorded diagnostic events",
	Long:  `Lists recent not-found and assistant events from the diagnostics database, newest first. Needs diagnostics.db_path to be set.`,
	RunE:  runDiagnostics,
}

func init() {
	diagnosticsCmd.Flags().String("kind", "", "filter by kind: route_not_found, course_not_found, assistant_explain, assistant_follow_up")
	diagnosticsCmd.Flags().Int("limit", 20, "maximum number of events")
	diagnosticsCmd.Flags().Bool("summary", false, "print counts per kind only")
	diagnosticsCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(diagnosticsCmd)
}

func runDiagnostics(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Diagnostics.Enabled || cfg.Diagnostics.DBPath == "" {
		return fmt.Errorf("no diagnostics database configured; set diagnostics.db_path")
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	diag, err := openDiagnostics(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer diag.Close()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	summaryOnly, _ := cmd.Flags().GetBool("summary")

	if summaryOnly {
		counts, err := diag.store.Summary(ctx)
		if err != nil {
			return err
		}
		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(counts)
		}
		for _, k := range diagnostics.Kinds {
			fmt.Printf("  %-20s %d\n", k, counts[k])
		}
		return nil
	}

	kindStr, _ := cmd.Flags().GetString("kind")
	kind := diagnostics.Kind(kindStr)
	if kind != "" && !kind.Valid() {
		return fmt.Errorf("unknown kind %q", kindStr)
	}
	limit, _ := cmd.Flags().GetInt("limit")

	events, err := diag.store.List(ctx, diagnostics.Filter{Kind: kind, Limit: limit})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	}

	if len(events) == 0 {
		fmt.Println("No events recorded.")
		return nil
	}
	for _, e := range events {
		fmt.Printf("  %s  %-20s %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Kind, e.Subject)
		if e.Detail != "" {
			fmt.Printf("  %19s  %s\n", "", truncate(e.Detail, 100))
		}
	}
	return nil
}
