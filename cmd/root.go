package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/learnhub/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "learnhub",
	Short: "Course catalog site with an in-page learning assistant",
	Long: `LearnHub serves a browsable course catalog with lesson pages. Selecting
text on a course page opens a learning assistant that explains the passage
and offers follow-up questions. The catalog and the assistant are also
available over a JSON API, as MCP tools and as a static export.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
