package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/learnhub/internal/assistant"
	mcpserver "github.com/ziadkadry99/learnhub/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing course search and the learning assistant as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		data, err := loadContent(cfg)
		if err != nil {
			return err
		}

		diag, err := openDiagnostics(context.Background(), cfg, log)
		if err != nil {
			return err
		}
		defer diag.Close()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "learnhub MCP server started on stdio (courses=%d)\n", data.catalog.Len())

		srv := mcpserver.NewServer(data.catalog, data.lessons, assistant.Canned{}, diag.recorder)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
